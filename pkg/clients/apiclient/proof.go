package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
)

// UploadProofResult is the verification engine's verdict on an
// uploaded proof image.
type UploadProofResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UploadProof submits proof-of-completion bytes for an activity as a
// multipart form. A rejected proof (success=false) is returned as an
// APIError carrying the engine's message.
func (c *Client) UploadProof(ctx context.Context, activityID int, filename string, payload []byte) error {
	if activityID < 1 {
		return &ValidationError{Op: "uploadProof request", Err: errors.New("activity id is required")}
	}
	if len(payload) == 0 {
		return &ValidationError{Op: "uploadProof request", Err: errors.New("proof payload is empty")}
	}
	if filename == "" {
		filename = "proof.jpg"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("apiclient: build uploadProof form: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return fmt.Errorf("apiclient: build uploadProof form: %w", err)
	}
	if err := writer.WriteField("activity_id", strconv.Itoa(activityID)); err != nil {
		return fmt.Errorf("apiclient: build uploadProof form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("apiclient: build uploadProof form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-proof", &buf)
	if err != nil {
		return fmt.Errorf("apiclient: build uploadProof request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result UploadProofResult
	if err := c.do("uploadProof", req, &result); err != nil {
		return err
	}
	if !result.Success {
		return &APIError{StatusCode: http.StatusOK, Message: result.Message}
	}
	return nil
}
