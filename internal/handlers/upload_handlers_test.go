package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// postMultipart uploads content under the given field name and returns
// the status and decoded body.
func (ts *testServer) postMultipart(t *testing.T, field, filename string, content []byte) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.server.URL+"/api/auth/upload-image", &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	var body map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("upload response is not JSON: %s", raw)
		}
	}
	return resp.StatusCode, body
}

// stagedFiles lists what is left in the staging directory.
func (ts *testServer) stagedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(ts.stagingDir)
	if err != nil {
		t.Fatalf("Failed to read staging dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadImageSuccess(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.postMultipart(t, "file", "avatar.png", []byte("fake image bytes"))
	if status != http.StatusOK {
		t.Fatalf("upload: status = %d, body = %v", status, body)
	}
	if body["imageUrl"] != "https://images.example.com/hosted.png" {
		t.Errorf("upload: imageUrl = %v", body["imageUrl"])
	}

	// The host saw exactly one staged file, and it is gone now.
	if len(ts.uploader.paths) != 1 {
		t.Fatalf("uploader received %d files, want 1", len(ts.uploader.paths))
	}
	staged := ts.uploader.paths[0]
	if filepath.Ext(staged) != ".png" {
		t.Errorf("staged file %q should keep the upload's extension", staged)
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Errorf("staged file %q still exists after a successful upload", staged)
	}
	if left := ts.stagedFiles(t); len(left) != 0 {
		t.Errorf("staging dir not empty after upload: %v", left)
	}
}

func TestUploadImageHostFailureStillCleansUp(t *testing.T) {
	ts := setupTestServer(t)
	ts.uploader.fail = true

	status, body := ts.postMultipart(t, "file", "avatar.jpg", []byte("fake image bytes"))
	if status != http.StatusInternalServerError {
		t.Fatalf("upload with failing host: status = %d, body = %v", status, body)
	}
	if body["success"] != false || body["message"] != "Failed to process image upload" {
		t.Errorf("upload failure body = %v", body)
	}

	if len(ts.uploader.paths) != 1 {
		t.Fatalf("uploader received %d files, want 1", len(ts.uploader.paths))
	}
	if _, err := os.Stat(ts.uploader.paths[0]); !os.IsNotExist(err) {
		t.Errorf("staged file still exists after a failed upload")
	}
	if left := ts.stagedFiles(t); len(left) != 0 {
		t.Errorf("staging dir not empty after failed upload: %v", left)
	}
}

func TestUploadImageMissingFile(t *testing.T) {
	ts := setupTestServer(t)

	// Wrong field name: nothing under "file".
	status, body := ts.postMultipart(t, "attachment", "avatar.png", []byte("bytes"))
	if status != http.StatusBadRequest || body["message"] != "No file uploaded" {
		t.Errorf("upload with wrong field: status = %d, body = %v", status, body)
	}

	// No multipart body at all.
	resp, err := ts.client.Post(ts.server.URL+"/api/auth/upload-image", "application/json", bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("bare upload request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("upload without multipart body: status = %d, want 400", resp.StatusCode)
	}

	// Neither path left anything staged, and the host was never called.
	if len(ts.uploader.paths) != 0 {
		t.Errorf("uploader was called %d times, want 0", len(ts.uploader.paths))
	}
	if left := ts.stagedFiles(t); len(left) != 0 {
		t.Errorf("staging dir not empty: %v", left)
	}
}
