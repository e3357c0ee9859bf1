package api

import (
	"encoding/json"
	"image"
	_ "image/jpeg"
	"image/png"
	"net/http"

	"outliner/internal/layout"
)

// handleAnnotate renders layout-model detections onto an uploaded page
// image and returns the annotated PNG. The detections come from the
// caller (the layout model runs elsewhere); this endpoint only draws.
func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, "image is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		jsonError(w, "decode image: "+err.Error(), http.StatusBadRequest)
		return
	}

	var detections []layout.Detection
	if raw := r.FormValue("detections"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &detections); err != nil {
			jsonError(w, "invalid detections: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	annotated := layout.Annotate(img, detections)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, annotated); err != nil {
		s.log.Error("encode annotated image", "error", err)
	}
}
