package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int    `json:"length"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
	Keyword   string `json:"keyword"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for the strength of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
	Keyword  string `json:"keyword"`
}

// StrengthResponse represents a scored password.
type StrengthResponse struct {
	Score    int              `json:"score"`
	Label    string           `json:"label"`
	Analysis StrengthAnalysis `json:"analysis"`
}

// StrengthAnalysis lists the password facts behind a score.
type StrengthAnalysis struct {
	Length           int  `json:"length"`
	HasLower         bool `json:"has_lower"`
	HasUpper         bool `json:"has_upper"`
	HasNumber        bool `json:"has_number"`
	HasSymbol        bool `json:"has_symbol"`
	HasRepeatRun     bool `json:"has_repeat_run"`
	HasSequentialRun bool `json:"has_sequential_run"`
	HasKeyword       bool `json:"has_keyword"`
	KeywordLength    int  `json:"keyword_length"`
}
