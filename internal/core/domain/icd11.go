package domain

// ICD11Chapter is a top-level chapter of the ICD-11 classification,
// keyed by its canonical WHO URI rather than a numeric id.
type ICD11Chapter struct {
	URI     string `json:"uri"`
	Code    string `json:"code,omitempty"`
	Title   string `json:"title"`
	Version string `json:"version,omitempty"`
}

// ICD11Code is a single diagnosis code under a chapter.
type ICD11Code struct {
	URI        string `json:"uri"`
	Code       string `json:"code"`
	Title      string `json:"title"`
	ChapterURI string `json:"chapterUri,omitempty"`
}

// ICD11Translation is a localized title for a code, keyed by numeric id.
type ICD11Translation struct {
	ID       int64  `json:"id"`
	CodeURI  string `json:"codeUri"`
	Language string `json:"language"`
	Title    string `json:"title"`
}
