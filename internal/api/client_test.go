package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

func TestGetSendsAuthAndParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok || user != "alice" || password != "pw" {
			t.Errorf("Expected basic auth alice/pw, got %q/%q", user, password)
		}
		if got := r.URL.Query().Get("program_name"); got != "2024A000" {
			t.Errorf("Expected program_name param, got %q", got)
		}
		if err := json.NewEncoder(w).Encode(Response{Msg: "ok"}); err != nil {
			t.Errorf("Failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientForBase(server.URL)

	params := url.Values{}
	params.Set("program_name", "2024A000")

	res, err := client.Get(server.URL+"/validation/user", Auth{User: "alice", Password: "pw"}, nil, params)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if res.Msg != "ok" {
		t.Errorf("Expected msg %q, got %q", "ok", res.Msg)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		if len(body) != 1 || body[0]["target_name"] != "SN2024abc" {
			t.Errorf("Expected one request for SN2024abc, got %v", body)
		}
		if err := json.NewEncoder(w).Encode(Response{Msg: "queued", Body: json.RawMessage(`[]`)}); err != nil {
			t.Errorf("Failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientForBase(server.URL)

	data := []map[string]any{{"target_name": "SN2024abc"}}
	res, err := client.Post(server.URL+"/too/winter", Auth{}, data, nil)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if res.Msg != "queued" {
		t.Errorf("Expected msg %q, got %q", "queued", res.Msg)
	}
}

func TestNon200SurfacesRequestFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientForBase(server.URL)

	_, err := client.Get(server.URL+"/validation/user", Auth{}, nil, nil)
	if !errors.Is(err, werrors.ErrRequestFailed) {
		t.Fatalf("Expected ErrRequestFailed, got %v", err)
	}
}

func TestDeleteSendsParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if got := r.URL.Query().Get("schedule_name"); got != "timed_requests_1" {
			t.Errorf("Expected schedule_name param, got %q", got)
		}
		if err := json.NewEncoder(w).Encode(Response{Msg: "deleted"}); err != nil {
			t.Errorf("Failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientForBase(server.URL)

	params := url.Values{}
	params.Set("schedule_name", "timed_requests_1")

	if _, err := client.Delete(server.URL+"/too/delete", Auth{}, params); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestGetStreamUsesContentDisposition(t *testing.T) {
	payload := []byte("zip-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="images_20240101.zip"`)
		if _, err := w.Write(payload); err != nil {
			t.Errorf("Failed to write payload: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientForBase(server.URL)
	outputDir := t.TempDir()

	outputPath, err := client.GetStream(server.URL+"/images/download_list", Auth{}, nil, nil, outputDir)
	if err != nil {
		t.Fatalf("GetStream failed: %v", err)
	}

	if filepath.Base(outputPath) != "images_20240101.zip" {
		t.Errorf("Expected filename from Content-Disposition, got %q", outputPath)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read downloaded file: %v", err)
	}
	if string(content) != string(payload) {
		t.Errorf("Expected content %q, got %q", payload, content)
	}
}

func TestGetStreamDefaultFilename(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("data")); err != nil {
			t.Errorf("Failed to write payload: %v", err)
		}
	}))
	defer server.Close()

	client := NewClientForBase(server.URL)

	outputPath, err := client.GetStream(server.URL+"/images/download_list", Auth{}, nil, nil, t.TempDir())
	if err != nil {
		t.Fatalf("GetStream failed: %v", err)
	}

	if filepath.Base(outputPath) != DefaultDownloadName {
		t.Errorf("Expected default filename %q, got %q", DefaultDownloadName, outputPath)
	}
}

func TestEndpointTable(t *testing.T) {
	endpoints := NewEndpoints(true)
	if endpoints.BaseURL != LocalBaseURL {
		t.Errorf("Expected local base URL, got %q", endpoints.BaseURL)
	}
	if endpoints.Ping() != LocalBaseURL+"/ping" {
		t.Errorf("Unexpected ping URL %q", endpoints.Ping())
	}

	endpoints = NewEndpoints(false)
	if endpoints.WinterToO() != RemoteBaseURL+"/too/winter" {
		t.Errorf("Unexpected WINTER ToO URL %q", endpoints.WinterToO())
	}
}
