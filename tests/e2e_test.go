package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type brewlogContainer struct {
	testcontainers.Container
	URI string
}

func setupBrewlog(ctx context.Context, t *testing.T) (*brewlogContainer, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "test-secret"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "test-session-secret"
	}

	natPort := nat.Port(port + "/tcp")

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{string(natPort)},
		Env: map[string]string{
			"PORT":           port,
			"GIN_MODE":       "release",
			"DATABASE_URL":   ":memory:",
			"JWT_SECRET":     jwtSecret,
			"SESSION_SECRET": sessionSecret,
			"TEST_MODE":      "true",
		},
		WaitingFor: wait.ForHTTP("/api/v1/brew-methods").
			WithPort(natPort).
			WithStatusCodeMatcher(func(status int) bool {
				return status == 200
			}).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	var brewlogC *brewlogContainer
	if container != nil {
		brewlogC = &brewlogContainer{Container: container}
	}
	if err != nil {
		return brewlogC, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return brewlogC, err
	}

	mappedPort, err := container.MappedPort(ctx, natPort)
	if err != nil {
		return brewlogC, err
	}

	brewlogC.URI = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	return brewlogC, nil
}

func TestE2E_BrewMethodsSeeded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	brewlogC, err := setupBrewlog(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, brewlogC)

	resp, err := http.Get(brewlogC.URI + "/api/v1/brew-methods")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var methods []map[string]interface{}
	decodeBody(t, resp.Body, &methods)
	assert.Len(t, methods, 7)

	names := make(map[string]bool)
	for _, method := range methods {
		names[method["name"].(string)] = true
	}
	assert.True(t, names["Espresso"])
	assert.True(t, names["V60"])
}

func TestE2E_SupplierAndBeanLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	brewlogC, err := setupBrewlog(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, brewlogC)

	supplier := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/suppliers", "alice",
		`{"name": "Square Mile", "location": "London"}`, http.StatusCreated)
	supplierID := supplier["id"].(string)

	bean := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/beans", "alice",
		fmt.Sprintf(`{"supplier_id": %q, "name": "Yirgacheffe", "origin": "Ethiopia"}`, supplierID),
		http.StatusCreated)
	assert.Equal(t, "Yirgacheffe", bean["name"])

	req, err := http.NewRequest(http.MethodGet, brewlogC.URI+"/api/v1/beans", nil)
	require.NoError(t, err)
	req.Header.Set("X-Test-User", "alice")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var beans []map[string]interface{}
	decodeBody(t, resp.Body, &beans)
	require.Len(t, beans, 1)
	assert.Equal(t, "Square Mile", beans[0]["supplier_name"])

	// Beans are owner-scoped: another user sees an empty list.
	req, err = http.NewRequest(http.MethodGet, brewlogC.URI+"/api/v1/beans", nil)
	require.NoError(t, err)
	req.Header.Set("X-Test-User", "bob")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var otherBeans []map[string]interface{}
	decodeBody(t, resp.Body, &otherBeans)
	assert.Empty(t, otherBeans)
}

func TestE2E_PublicRatingAppearsInGlobalFeed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	brewlogC, err := setupBrewlog(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, brewlogC)

	supplier := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/suppliers", "alice",
		`{"name": "Square Mile"}`, http.StatusCreated)
	bean := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/beans", "alice",
		fmt.Sprintf(`{"supplier_id": %q, "name": "Panama Geisha"}`, supplier["id"].(string)),
		http.StatusCreated)

	doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/ratings", "alice",
		fmt.Sprintf(`{"bean_id": %q, "brew_method_id": "na", "rating": 4.5, "is_public": true}`, bean["id"].(string)),
		http.StatusCreated)
	doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/ratings", "alice",
		fmt.Sprintf(`{"bean_id": %q, "brew_method_id": "na", "rating": 2.0, "is_public": false}`, bean["id"].(string)),
		http.StatusCreated)

	resp, err := http.Get(brewlogC.URI + "/api/v1/ratings/global")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ratings []map[string]interface{}
	decodeBody(t, resp.Body, &ratings)
	require.Len(t, ratings, 1, "only the public rating should be listed")
	assert.Equal(t, 4.5, ratings[0]["rating"].(float64))
	assert.Equal(t, "Panama Geisha", ratings[0]["bean_name"])

	resp, err = http.Get(brewlogC.URI + "/api/v1/ratings/search?q=geisha")
	require.NoError(t, err)
	defer resp.Body.Close()

	var matches []map[string]interface{}
	decodeBody(t, resp.Body, &matches)
	assert.Len(t, matches, 1)
}

func TestE2E_CommentsRequireAuth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	brewlogC, err := setupBrewlog(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, brewlogC)

	supplier := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/suppliers", "alice",
		`{"name": "Square Mile"}`, http.StatusCreated)
	bean := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/beans", "alice",
		fmt.Sprintf(`{"supplier_id": %q, "name": "Yirgacheffe"}`, supplier["id"].(string)),
		http.StatusCreated)
	rating := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/ratings", "alice",
		fmt.Sprintf(`{"bean_id": %q, "brew_method_id": "na", "rating": 4.0, "is_public": true}`, bean["id"].(string)),
		http.StatusCreated)
	ratingID := rating["id"].(string)

	// Anonymous posting is rejected.
	req, err := http.NewRequest(http.MethodPost, brewlogC.URI+"/api/v1/ratings/"+ratingID+"/comments",
		strings.NewReader(`{"comment": "nice brew"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/ratings/"+ratingID+"/comments", "bob",
		`{"comment": "nice brew"}`, http.StatusCreated)

	// The thread itself is public.
	resp, err = http.Get(brewlogC.URI + "/api/v1/ratings/" + ratingID + "/comments")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []map[string]interface{}
	decodeBody(t, resp.Body, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice brew", comments[0]["comment"])
}

func TestE2E_CredentialSignUpAndSignIn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test")
	}

	ctx := context.Background()
	brewlogC, err := setupBrewlog(ctx, t)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, brewlogC)

	session := doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/auth/signup", "",
		`{"email": "alice@example.com", "password": "correct-horse", "username": "alice"}`,
		http.StatusCreated)
	assert.NotEmpty(t, session["token"])

	session = doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/auth/signin", "",
		`{"email": "alice@example.com", "password": "correct-horse"}`,
		http.StatusOK)
	assert.NotEmpty(t, session["token"])

	doJSON(t, brewlogC.URI, http.MethodPost, "/api/v1/auth/signin", "",
		`{"email": "alice@example.com", "password": "wrong-horse"}`,
		http.StatusUnauthorized)
}

func doJSON(t *testing.T, baseURL, method, path, testUser, body string, wantStatus int) map[string]interface{} {
	req, err := http.NewRequest(method, baseURL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if testUser != "" {
		req.Header.Set("X-Test-User", testUser)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode != wantStatus {
		t.Logf("%s %s response: %s", method, path, string(raw))
	}
	require.Equal(t, wantStatus, resp.StatusCode)

	var result map[string]interface{}
	if len(raw) > 0 && json.Unmarshal(raw, &result) != nil {
		return nil
	}
	return result
}

func decodeBody(t *testing.T, body io.Reader, out interface{}) {
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
