// Package mineru extracts document text through a MinerU-compatible asynchronous OCR service.
package mineru

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/config"
)

const (
	statePending    = "pending"
	stateRunning    = "running"
	stateConverting = "converting"
	stateDone       = "done"
	stateFailed     = "failed"
)

var (
	ErrTaskFailed  = errors.New("ocr task failed")
	ErrTaskTimeout = errors.New("ocr task did not finish in time")
	ErrNoContent   = errors.New("ocr result contains no content")
)

// URLSigner makes a stored document reachable by the OCR service.
type URLSigner interface {
	PresignedURL(ctx context.Context, name string) (string, error)
}

type Client struct {
	log        *slog.Logger
	cfg        config.OCR
	signer     URLSigner
	httpClient *http.Client
}

func New(log *slog.Logger, cfg config.OCR, signer URLSigner) *Client {
	return &Client{
		log:    log,
		cfg:    cfg,
		signer: signer,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type taskRequest struct {
	URL          string `json:"url"`
	ModelVersion string `json:"model_version,omitempty"`
	DataID       string `json:"data_id,omitempty"`
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
	Data    T      `json:"data"`
}

type createdTask struct {
	TaskID string `json:"task_id"`
}

type taskStatus struct {
	TaskID     string `json:"task_id"`
	State      string `json:"state"`
	FullZipURL string `json:"full_zip_url"`
	ErrMsg     string `json:"err_msg"`
	Progress   struct {
		ExtractedPages int `json:"extracted_pages"`
		TotalPages     int `json:"total_pages"`
	} `json:"extract_progress"`
}

type contentBlock struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	PageIdx int    `json:"page_idx"`
}

// ExtractText submits the document, waits for the task and returns the recognized text page by page.
func (c *Client) ExtractText(ctx context.Context, documentName string) (string, error) {
	docURL, err := c.signer.PresignedURL(ctx, documentName)
	if err != nil {
		return "", fmt.Errorf("failed to get document url: %w", err)
	}

	taskID, err := c.createTask(ctx, docURL, documentName)
	if err != nil {
		return "", err
	}

	c.log.DebugContext(ctx, "ocr task created",
		slog.String("document", documentName),
		slog.String("task_id", taskID),
	)

	zipURL, err := c.waitForTask(ctx, taskID)
	if err != nil {
		return "", err
	}

	return c.fetchText(ctx, zipURL)
}

func (c *Client) createTask(ctx context.Context, docURL, dataID string) (string, error) {
	body, err := json.Marshal(taskRequest{
		URL:          docURL,
		ModelVersion: c.cfg.ModelVersion,
		DataID:       dataID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal task request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/extract/task", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	task, err := call[createdTask](c, req)
	if err != nil {
		return "", fmt.Errorf("failed to create ocr task: %w", err)
	}

	if task.TaskID == "" {
		return "", errors.New("failed to create ocr task: empty task id")
	}

	return task.TaskID, nil
}

func (c *Client) taskStatus(ctx context.Context, taskID string) (*taskStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIURL+"/extract/task/"+taskID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	status, err := call[taskStatus](c, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get ocr task status: %w", err)
	}

	return status, nil
}

// waitForTask polls the task at a fixed interval and gives up after MaxPolls attempts.
func (c *Client) waitForTask(ctx context.Context, taskID string) (string, error) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for poll := 1; poll <= c.cfg.MaxPolls; poll++ {
		status, err := c.taskStatus(ctx, taskID)
		if err != nil {
			return "", err
		}

		switch status.State {
		case stateDone:
			if status.FullZipURL == "" {
				return "", fmt.Errorf("%w: task %s finished without result url", ErrTaskFailed, taskID)
			}
			return status.FullZipURL, nil
		case stateFailed:
			return "", fmt.Errorf("%w: task %s: %s", ErrTaskFailed, taskID, status.ErrMsg)
		case statePending, stateRunning, stateConverting:
			c.log.DebugContext(ctx, "ocr task in progress",
				slog.String("task_id", taskID),
				slog.String("state", status.State),
				slog.Int("extracted_pages", status.Progress.ExtractedPages),
				slog.Int("total_pages", status.Progress.TotalPages),
			)
		default:
			return "", fmt.Errorf("%w: task %s: unknown state %q", ErrTaskFailed, taskID, status.State)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return "", fmt.Errorf("%w: task %s after %d polls", ErrTaskTimeout, taskID, c.cfg.MaxPolls)
}

func (c *Client) fetchText(ctx context.Context, zipURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, zipURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download ocr result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download ocr result: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ocr result: %w", err)
	}

	return TextFromArchive(data)
}

// TextFromArchive reads the content list of a result archive and falls back to its markdown
// rendition when no content list is present.
func TextFromArchive(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open ocr result: %w", err)
	}

	var markdown *zip.File
	for _, f := range zr.File {
		switch {
		case strings.HasSuffix(f.Name, "content_list.json"):
			content, err := readFile(f)
			if err != nil {
				return "", err
			}

			var blocks []contentBlock
			if err := json.Unmarshal(content, &blocks); err != nil {
				return "", fmt.Errorf("failed to parse %s: %w", f.Name, err)
			}

			return joinPages(blocks), nil
		case strings.HasSuffix(f.Name, ".md"):
			markdown = f
		}
	}

	if markdown == nil {
		return "", ErrNoContent
	}

	content, err := readFile(markdown)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

func joinPages(blocks []contentBlock) string {
	pages := make(map[int][]string)
	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		pages[b.PageIdx] = append(pages[b.PageIdx], text)
	}

	idx := make([]int, 0, len(pages))
	for i := range pages {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, strings.Join(pages[i], "\n"))
	}

	return strings.Join(out, "\n\n")
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}

	return content, nil
}

func call[T any](c *Client, req *http.Request) (*T, error) {
	if c.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var res envelope[T]
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if res.Code != 0 {
		return nil, fmt.Errorf("api error %d: %s", res.Code, res.Message)
	}

	return &res.Data, nil
}
