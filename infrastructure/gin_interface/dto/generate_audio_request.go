package dto

const (
	DefaultVoice          = "onyx"
	DefaultModel          = "gpt-4o-mini-tts"
	DefaultResponseFormat = "mp3"
	DefaultSpeed          = 0.9
)

type GenerateAudioRequest struct {
	Text           string  `json:"text" binding:"required"`
	StoryID        string  `json:"storyId"`
	JobID          string  `json:"jobId"`
	Voice          string  `json:"voice"`
	Model          string  `json:"model"`
	ResponseFormat string  `json:"responseFormat"`
	UserEmail      string  `json:"userEmail"`
	Speed          float64 `json:"speed"`
	Instructions   string  `json:"instructions"`
}

// ApplyDefaults fills in the fields the caller left out.
func (r *GenerateAudioRequest) ApplyDefaults() {
	if r.Voice == "" {
		r.Voice = DefaultVoice
	}
	if r.Model == "" {
		r.Model = DefaultModel
	}
	if r.ResponseFormat == "" {
		r.ResponseFormat = DefaultResponseFormat
	}
	if r.Speed == 0 {
		r.Speed = DefaultSpeed
	}
}

type GenerateAudioResponse struct {
	Accepted bool   `json:"accepted"`
	JobID    string `json:"jobId,omitempty"`
}
