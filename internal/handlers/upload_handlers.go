package handlers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/taskvault/app/internal/storage"
)

// uploadFieldName is the multipart field the client sends the image in.
const uploadFieldName = "file"

// maxUploadBytes caps in-memory multipart parsing; larger parts spill
// to disk via the stdlib's own temp files.
const maxUploadBytes = 10 << 20

// UploadHandlers stages an incoming image locally, forwards it to the
// image host, and deletes the staged copy on every exit path.
type UploadHandlers struct {
	uploader   storage.Uploader
	stagingDir string // empty means os.TempDir
}

func NewUploadHandlers(uploader storage.Uploader, stagingDir string) *UploadHandlers {
	return &UploadHandlers{uploader: uploader, stagingDir: stagingDir}
}

// UploadImage accepts exactly one file under the "file" field and
// responds with the hosted URL. The URL is not persisted here; the
// client follows up with update-profile.
func (h *UploadHandlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, false, "No file uploaded")
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, false, "No file uploaded")
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp(h.stagingDir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		log.Printf("upload: staging file: %v", err)
		respondMessage(w, http.StatusInternalServerError, false, "Failed to process image upload")
		return
	}
	tmpPath := tmp.Name()

	// The staged file must go away on success, host failure, and copy
	// failure alike. A cleanup failure is logged, never returned.
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			log.Printf("upload: removing staged file %s: %v", tmpPath, err)
		}
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		log.Printf("upload: writing staged file: %v", err)
		respondMessage(w, http.StatusInternalServerError, false, "Failed to process image upload")
		return
	}
	if err := tmp.Close(); err != nil {
		log.Printf("upload: closing staged file: %v", err)
		respondMessage(w, http.StatusInternalServerError, false, "Failed to process image upload")
		return
	}

	url, err := h.uploader.Upload(r.Context(), tmpPath)
	if err != nil {
		log.Printf("upload: forwarding to image host: %v", err)
		respondMessage(w, http.StatusInternalServerError, false, "Failed to process image upload")
		return
	}

	respondJSON(w, http.StatusOK, struct {
		ImageURL string `json:"imageUrl"`
	}{url})
}
