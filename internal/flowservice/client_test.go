package flowservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flowdeck/internal/errors"
)

func TestListInstanceNames(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantNames []string
		wantErr   bool
	}{
		{
			name: "returns names",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/flows" {
					t.Errorf("path = %q, want /api/v1/flows", r.URL.Path)
				}
				if r.Method != http.MethodGet {
					t.Errorf("method = %q, want GET", r.Method)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`["alpha","beta"]`))
			},
			wantNames: []string{"alpha", "beta"},
		},
		{
			name: "empty list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantNames: []string{},
		},
		{
			name: "server error becomes ListFetchError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "registry offline", http.StatusInternalServerError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL)
			names, err := client.ListInstanceNames(context.Background())

			if tt.wantErr {
				var listErr *errors.ListFetchError
				if !errors.As(err, &listErr) {
					t.Fatalf("error = %v, want ListFetchError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListInstanceNames returned error: %v", err)
			}
			if len(names) != len(tt.wantNames) {
				t.Fatalf("got %d names, want %d", len(names), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if names[i] != want {
					t.Errorf("names[%d] = %q, want %q", i, names[i], want)
				}
			}
		})
	}
}

func TestGetInstanceDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/flows/alpha":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"name":"alpha","pipeline":"nightly-etl"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	t.Run("known name", func(t *testing.T) {
		inst, err := client.GetInstanceDetails(context.Background(), "alpha")
		if err != nil {
			t.Fatalf("GetInstanceDetails returned error: %v", err)
		}
		if inst.Name != "alpha" || inst.Pipeline != "nightly-etl" {
			t.Errorf("instance = %+v, want alpha/nightly-etl", inst)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := client.GetInstanceDetails(context.Background(), "ghost")
		var detailErr *errors.DetailFetchError
		if !errors.As(err, &detailErr) {
			t.Fatalf("error = %v, want DetailFetchError", err)
		}
		if detailErr.Name != "ghost" {
			t.Errorf("DetailFetchError.Name = %q, want ghost", detailErr.Name)
		}
		if !errors.Is(err, errors.ErrInstanceNotFound) {
			t.Errorf("error %v does not wrap ErrInstanceNotFound", err)
		}
	})
}

func TestDeleteInstance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotMethod, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		if err := client.DeleteInstance(context.Background(), "alpha"); err != nil {
			t.Fatalf("DeleteInstance returned error: %v", err)
		}
		if gotMethod != http.MethodDelete {
			t.Errorf("method = %q, want DELETE", gotMethod)
		}
		if gotPath != "/api/v1/flows/alpha" {
			t.Errorf("path = %q, want /api/v1/flows/alpha", gotPath)
		}
	})

	t.Run("failure carries service message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "instance is mid-checkpoint", http.StatusConflict)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		err := client.DeleteInstance(context.Background(), "alpha")

		var delErr *errors.DeleteError
		if !errors.As(err, &delErr) {
			t.Fatalf("error = %v, want DeleteError", err)
		}
		if delErr.Message != "instance is mid-checkpoint" {
			t.Errorf("message = %q, want service error body", delErr.Message)
		}
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		err := client.DeleteInstance(context.Background(), "ghost")
		if !errors.Is(err, errors.ErrInstanceNotFound) {
			t.Errorf("error = %v, want ErrInstanceNotFound", err)
		}
	})
}

func TestAuthTokenHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("sekrit"))
	if _, err := client.ListInstanceNames(context.Background()); err != nil {
		t.Fatalf("ListInstanceNames returned error: %v", err)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want Bearer sekrit", gotAuth)
	}
}

func TestUnreachableServer(t *testing.T) {
	// Port 1 is essentially guaranteed to refuse connections.
	client := NewClient("http://127.0.0.1:1")
	_, err := client.ListInstanceNames(context.Background())
	if !errors.Is(err, errors.ErrServiceUnavailable) {
		t.Errorf("error = %v, want ErrServiceUnavailable", err)
	}
	if !errors.IsRetryable(err) {
		t.Errorf("transport failure should be retryable, got %v", err)
	}
}
