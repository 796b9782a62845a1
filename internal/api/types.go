// Package api defines the request and response bodies of the HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeDuplicateName        = "DUPLICATE_NAME"
	CodeHasAssociatedPosts   = "HAS_ASSOCIATED_POSTS"
	CodeEmailAlreadyExists   = "EMAIL_ALREADY_EXISTS"
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeTooManyRequests      = "TOO_MANY_REQUESTS"
	CodeInternal             = "INTERNAL"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// MessageResponse is a generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

// CategoryResponse is a category with its published post count.
type CategoryResponse struct {
	ID        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	PostCount int64              `json:"postCount"`
}

// TagResponse is a tag with its published post count.
type TagResponse struct {
	ID        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	PostCount int64              `json:"postCount"`
}

// AuthorResponse is the author summary embedded in PostResponse.
type AuthorResponse struct {
	ID   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// CategoryRefResponse is the category summary embedded in PostResponse.
type CategoryRefResponse struct {
	ID   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// TagRefResponse is a tag summary embedded in PostResponse.
type TagRefResponse struct {
	ID   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// PostResponse is a single post.
type PostResponse struct {
	ID          openapi_types.UUID   `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	Status      string               `json:"status"`
	ReadingTime int                  `json:"readingTime"`
	Author      *AuthorResponse      `json:"author,omitempty"`
	Category    *CategoryRefResponse `json:"category,omitempty"`
	Tags        []TagRefResponse     `json:"tags"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title      string               `json:"title" binding:"required,min=3,max=200"`
	Content    string               `json:"content" binding:"required,min=10"`
	CategoryID openapi_types.UUID   `json:"categoryId" binding:"required"`
	TagIDs     []openapi_types.UUID `json:"tagIds" binding:"max=10"`
	Status     string               `json:"status" binding:"required,oneof=DRAFT PUBLISHED"`
}

// UserResponse is a user without credentials.
type UserResponse struct {
	ID    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
