package imaging

import (
	"context"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

const visionPrompt = `Analyze this image thoroughly for misinformation:

1. EXTRACT ALL TEXT: Read every word visible in the image
2. IMAGE TYPE: Identify if this is a screenshot, meme, news article, photo, or other
3. MANIPULATION: Check for signs of editing, photoshop, deepfake, or tampering
4. CLAIMS: List any factual claims made in text or implied by the image
5. CREDIBILITY: Rate how credible this image appears (0-100)
6. RED FLAGS: Note any suspicious elements (fake fonts, poor quality, inconsistencies)

Return ONLY a JSON object:
{
    "extracted_text": "complete text from image",
    "image_type": "screenshot/meme/news/photo/other",
    "manipulation_detected": true/false,
    "manipulation_signs": ["list specific signs if any"],
    "claims": ["claim 1", "claim 2"],
    "credibility_score": 0-100,
    "red_flags": ["flag 1", "flag 2"],
    "reasoning": "brief explanation"
}`

type visionAnswer struct {
	ExtractedText        string         `json:"extracted_text"`
	ImageType            string         `json:"image_type"`
	ManipulationDetected llm.Bool       `json:"manipulation_detected"`
	ManipulationSigns    llm.StringList `json:"manipulation_signs"`
	Claims               llm.StringList `json:"claims"`
	CredibilityScore     llm.Number     `json:"credibility_score"`
	RedFlags             llm.StringList `json:"red_flags"`
	Reasoning            string         `json:"reasoning"`
}

// Vision asks the assessor to read and judge an image. On failure it returns
// the neutral fallback analysis together with the error.
func Vision(ctx context.Context, assessor llm.Assessor, img llm.Image) (model.VisionAnalysis, error) {
	if assessor == nil {
		return VisionFallback(llm.ErrNotConfigured), llm.ErrNotConfigured
	}

	var answer visionAnswer
	err := assessor.Assess(ctx, llm.Request{
		Prompt:      visionPrompt,
		Images:      []llm.Image{img},
		Temperature: 0.1,
	}, &answer)
	if err != nil {
		return VisionFallback(err), err
	}

	imageType := strings.ToLower(strings.TrimSpace(answer.ImageType))
	if imageType == "" {
		imageType = "unknown"
	}

	return model.VisionAnalysis{
		ExtractedText:        strings.TrimSpace(answer.ExtractedText),
		ImageType:            imageType,
		ManipulationDetected: bool(answer.ManipulationDetected),
		ManipulationSigns:    answer.ManipulationSigns,
		Claims:               answer.Claims,
		CredibilityScore:     answer.CredibilityScore.Or(50),
		RedFlags:             answer.RedFlags,
		Reasoning:            strings.TrimSpace(answer.Reasoning),
	}, nil
}

// VisionFallback is the analysis used when the vision call fails
func VisionFallback(err error) model.VisionAnalysis {
	return model.VisionAnalysis{
		ImageType:         "unknown",
		ManipulationSigns: []string{},
		Claims:            []string{},
		CredibilityScore:  50,
		RedFlags:          []string{"Analysis error: " + err.Error()},
	}
}
