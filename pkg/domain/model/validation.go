package model

// FileValidation is the accumulated outcome of checking an uploaded
// workflow file. Errors holds every failed check, not only the first.
type FileValidation struct {
	Valid             bool     `json:"valid"`
	Errors            []string `json:"errors"`
	SanitizedFileName string   `json:"sanitizedFileName"`
}
