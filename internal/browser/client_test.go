package browser

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
)

func TestClientList(t *testing.T) {
	var gotAuth, gotParent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/notes/list" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotParent = r.URL.Query().Get("parent")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Node{
			{ID: "f1", Type: models.NodeTypeFolder, Name: "Sem5"},
			{ID: "d1", Type: models.NodeTypeDocument, Name: "syllabus.pdf", Filename: "abc.pdf"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, StaticToken("tok-123"))
	nodes, err := c.List(context.Background(), "f9")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotParent != "f9" {
		t.Errorf("expected parent f9, got %q", gotParent)
	}
	if len(nodes) != 2 || nodes[0].ID != "f1" || nodes[1].Filename != "abc.pdf" {
		t.Errorf("unexpected listing: %+v", nodes)
	}
}

func TestClientList_NoTokenNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("unauthenticated client sent an Authorization header")
		}
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	if _, err := c.List(context.Background(), ""); err != nil {
		t.Fatalf("List failed: %v", err)
	}
}

func TestClientCreateFolder_EmptyNameNoRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	_, err := c.CreateFolder(context.Background(), "   ", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if requests != 0 {
		t.Errorf("empty folder name still issued %d request(s)", requests)
	}
}

func TestClientCreateFolder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/notes/folder" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body struct {
			Name   string  `json:"name"`
			Parent *string `json:"parent"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body.Name != "Sem5" {
			t.Errorf("expected trimmed name Sem5, got %q", body.Name)
		}
		if body.Parent != nil {
			t.Errorf("expected nil parent for root, got %q", *body.Parent)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Node{ID: "f1", Type: models.NodeTypeFolder, Name: body.Name})
	}))
	defer server.Close()

	c := NewClient(server.URL, StaticToken("tok"))
	folder, err := c.CreateFolder(context.Background(), "  Sem5  ", "")
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	if folder.ID != "f1" || folder.Name != "Sem5" {
		t.Errorf("unexpected folder: %+v", folder)
	}
}

func TestClientUploadDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/notes/upload" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}
		if got := r.FormValue("parent"); got != "f1" {
			t.Errorf("expected parent f1, got %q", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "notes.pdf" {
			t.Errorf("expected filename notes.pdf, got %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "%PDF-1.4 test" {
			t.Errorf("unexpected file content: %q", content)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Node{ID: "d1", Type: models.NodeTypeDocument, Name: header.Filename})
	}))
	defer server.Close()

	c := NewClient(server.URL, StaticToken("tok"))
	doc, err := c.UploadDocument(context.Background(), "notes.pdf", strings.NewReader("%PDF-1.4 test"), "f1")
	if err != nil {
		t.Fatalf("UploadDocument failed: %v", err)
	}
	if doc.ID != "d1" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestClientDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/notes/n42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(server.URL, StaticToken("tok"))
	if err := c.Delete(context.Background(), "n42"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
	}

	for _, tc := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"detail":"nope"}`))
		}))

		c := NewClient(server.URL, nil)
		_, err := c.List(context.Background(), "")
		if !errors.Is(err, tc.want) {
			t.Errorf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
		if err != nil && !strings.Contains(err.Error(), "nope") {
			t.Errorf("status %d: problem detail missing from error: %v", tc.status, err)
		}
		server.Close()
	}
}

func TestClientDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uploads/abc.pdf" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 body"))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)
	rc, err := c.Download(context.Background(), "abc.pdf")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	defer rc.Close()

	body, _ := io.ReadAll(rc)
	if string(body) != "%PDF-1.4 body" {
		t.Errorf("unexpected body: %q", body)
	}
}
