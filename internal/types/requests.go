package types

// RecognitionRequest is the inbound body for food recognition
type RecognitionRequest struct {
	Base64ImageData string   `json:"base64ImageData" binding:"required"`
	SupportedFoods  []string `json:"supportedFoods" binding:"required,min=1,dive,required"`
}

// NutritionTotals holds the aggregated nutrition values for a meal.
// Calories, sodium and total weight are whole-number quantities; the
// gram-level macros carry one decimal place when rendered into prompts.
type NutritionTotals struct {
	Calories    float64 `json:"calories" binding:"gte=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Fat         float64 `json:"fat" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Sugar       float64 `json:"sugar" binding:"gte=0"`
	Fiber       float64 `json:"fiber" binding:"gte=0"`
	Sodium      float64 `json:"sodium" binding:"gte=0"`
	TotalWeight float64 `json:"totalWeight" binding:"gte=0"`
}

// ScoreRequest is the inbound body for nutrition scoring
type ScoreRequest struct {
	TotalNutrition *NutritionTotals `json:"totalNutrition" binding:"required"`
	FoodNames      []string         `json:"foodNames"`
}

// RecognizedFood is one entry of the recognition result relayed from the model
type RecognizedFood struct {
	FoodName             string  `json:"foodName"`
	EstimatedWeightGrams float64 `json:"estimatedWeightGrams"`
	Confidence           float64 `json:"confidence"`
}

// ScoreResult is the shape of the JSON the model produces for a score request
type ScoreResult struct {
	NScore  int    `json:"nScore"`
	Message string `json:"message"`
}
