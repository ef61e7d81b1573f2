package handlers

const (
	maxBody = 1 << 20 // 1MB for JSON requests

	ErrInvalidJSON          = "Invalid JSON body"
	ErrInternalServerError  = "Internal server error"
	ErrInvalidPath          = "Invalid path"
	ErrFileNotFound         = "File not found"
	ErrNoAudioFile          = "No audio file provided"
	ErrNoTranscriptFile     = "Please select a transcript file first."
	ErrUnknownAudio         = "Audio file not found"
	ErrInvalidIndex         = "Invalid paraphrase index"
	ErrInvalidPass          = "Invalid pass number"
	ErrEssayRequired        = "Essay text is required"
	ErrTextRequired         = "Text is required"
	ErrInvalidCount         = "Invalid count"
	ErrInvalidSeed          = "Invalid seed"
	ErrSpeechUnavailable    = "Speech synthesis is unavailable"
	ErrEssayNotSent         = "Failed to send essay"
	ErrTranscriptsRequired  = "Both user_text and reference_text are required"
	ErrQuestionRequired     = "Question text is required"
	ErrQuestionTextRequired = "Both question and text are required"
	ErrKeywordsTextRequired = "Both keywords and text are required"
	ErrTooManyRequests      = "Too many requests"
	ErrNoLearner            = "Learner not identified"
	ErrServiceStarting      = "Service is starting"
)
