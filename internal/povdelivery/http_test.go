package povdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/jstoebel/exercises/internal/pov"
	"github.com/jstoebel/exercises/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newServer() *gin.Engine {
	h := NewHandler()

	server := gin.New()
	server.POST("/trees/pov", h.FromPov)
	server.POST("/trees/path", h.PathTo)

	return server
}

func send(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Encoding request body error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	recorder := httptest.NewRecorder()
	newServer().ServeHTTP(recorder, req)

	return recorder
}

func sampleTree() *pov.Tree {
	return pov.New("parent", pov.New("x", pov.New("kid-0")), pov.New("sibling"))
}

func TestFromPov(t *testing.T) {
	testCases := []struct {
		name           string
		body           any
		wantStatusCode int
		wantError      string
		wantTree       *pov.Tree
	}{
		{
			name:           "OK",
			body:           gin.H{"tree": sampleTree(), "from": "x"},
			wantStatusCode: http.StatusOK,
			wantTree:       pov.New("x", pov.New("kid-0"), pov.New("parent", pov.New("sibling"))),
		},
		{
			name:           "UnknownNode",
			body:           gin.H{"tree": sampleTree(), "from": "nope"},
			wantStatusCode: http.StatusNotFound,
			wantError:      `node not found: "nope"`,
		},
		{
			name:           "MissingFrom",
			body:           gin.H{"tree": sampleTree()},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "From is required",
		},
		{
			name:           "DuplicateLabels",
			body:           gin.H{"tree": pov.New("a", pov.New("a")), "from": "a"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      `duplicate node label: "a"`,
		},
		{
			name:           "NullChild",
			body:           json.RawMessage(`{"tree":{"label":"a","children":[null]},"from":"a"}`),
			wantStatusCode: http.StatusBadRequest,
			wantError:      `invalid tree: null child of "a"`,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := send(t, "/trees/pov", tc.body)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &povData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf("res.Error=%q, want %q", res.Error, tc.wantError)
			}

			if tc.wantTree != nil {
				got := res.Data.(*povData).Tree
				if !tc.wantTree.Equal(got) {
					t.Errorf("tree = %s, want %s", got, tc.wantTree)
				}
			}
		})
	}
}

func TestPathTo(t *testing.T) {
	testCases := []struct {
		name           string
		body           any
		wantStatusCode int
		wantError      string
		wantPath       []string
	}{
		{
			name:           "OK",
			body:           gin.H{"tree": sampleTree(), "from": "kid-0", "to": "sibling"},
			wantStatusCode: http.StatusOK,
			wantPath:       []string{"kid-0", "x", "parent", "sibling"},
		},
		{
			name:           "UnknownDestination",
			body:           gin.H{"tree": sampleTree(), "from": "x", "to": "nope"},
			wantStatusCode: http.StatusNotFound,
			wantError:      `node not found: "nope"`,
		},
		{
			name:           "MissingTree",
			body:           gin.H{"from": "x", "to": "parent"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Tree is required",
		},
		{
			name:           "NullChild",
			body:           json.RawMessage(`{"tree":{"label":"a","children":[{"label":"b"},null]},"from":"a","to":"b"}`),
			wantStatusCode: http.StatusBadRequest,
			wantError:      `invalid tree: null child of "a"`,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := send(t, "/trees/path", tc.body)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &pathData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if !strings.EqualFold(res.Error, tc.wantError) {
				t.Errorf("res.Error=%q, want %q", res.Error, tc.wantError)
			}

			if diff := cmp.Diff(tc.wantPath, res.Data.(*pathData).Path); diff != "" {
				t.Errorf("res.Data.Path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
