// Package api implements the HTTP client for the to-do server. It mirrors
// the server's JSON surface and translates error responses back into the
// shared sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"todoapp/internal/common"
)

// User is the identity returned by register/login. The client keeps it as
// its proof of authentication; no token is involved.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Task mirrors the server's task resource.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	IsDone    bool      `json:"isDone"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// doJSON performs one request. A non-2xx response is translated to a
// sentinel error where one applies, otherwise to the server's message.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return common.ErrorUnauthorized
		case http.StatusNotFound:
			return common.ErrorNotFound
		}
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return errors.New(e.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Register creates an account and returns the new identity.
func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	u := &User{}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "password": password}, u)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns the identity.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	u := &User{}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password}, u)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListTasks returns the owner's active tasks.
func (c *Client) ListTasks(ctx context.Context, ownerID int64) ([]Task, error) {
	var tasks []Task
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/todos?userId=%d", ownerID), nil, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task for the owner.
func (c *Client) CreateTask(ctx context.Context, title string, ownerID int64) (*Task, error) {
	task := &Task{}
	err := c.doJSON(ctx, http.MethodPost, "/api/todos",
		&Task{Title: title, OwnerID: ownerID}, task)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask sends the full task body to the server.
func (c *Client) UpdateTask(ctx context.Context, task *Task) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", task.ID), task, nil)
}

// DeleteTask removes the task with the given id.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil)
}

// CompleteAll marks all of the owner's tasks done and returns the count changed.
func (c *Client) CompleteAll(ctx context.Context, ownerID int64) (int64, error) {
	var out struct {
		UpdatedCount int64 `json:"updatedCount"`
	}
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/todos/complete-all?userId=%d", ownerID), nil, &out)
	return out.UpdatedCount, err
}

// UncompleteAll marks all of the owner's tasks not-done and returns the count changed.
func (c *Client) UncompleteAll(ctx context.Context, ownerID int64) (int64, error) {
	var out struct {
		UpdatedCount int64 `json:"updatedCount"`
	}
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/todos/uncomplete-all?userId=%d", ownerID), nil, &out)
	return out.UpdatedCount, err
}

// DeleteCompleted removes all of the owner's done tasks and returns the count removed.
func (c *Client) DeleteCompleted(ctx context.Context, ownerID int64) (int64, error) {
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/completed?userId=%d", ownerID), nil, &out)
	return out.DeletedCount, err
}
