package dto

type SaveImageRequest struct {
	ImageData string `json:"imageData"`
	Filename  string `json:"filename"`
	Subdir    string `json:"subdir,omitempty"`
}

type SaveImageAsRequest struct {
	ImageData string `json:"imageData"`
	Filename  string `json:"filename"`
}

type SaveImageResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type ImagePayload struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
	Subdir   string `json:"subdir,omitempty"`
}

type SaveImagesRequest struct {
	Images []ImagePayload `json:"images"`
}

type SaveImagesResponse struct {
	Message  string `json:"message"`
	Saved    int    `json:"saved"`
	Failed   int    `json:"failed"`
	Location string `json:"location"`
}
