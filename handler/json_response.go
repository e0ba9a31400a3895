package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/apicommons/core"
)

type jsonResponse struct {
	status int
	body   any
}

// Render encodes the body before writing the header so an encoding failure
// can still be answered by the error handler.
func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	b, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(b, '\n'))
	return err
}

// JSON renders any body with the given status.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// OK answers 200 with a success envelope.
func OK[T any](data T) Response {
	return JSON(http.StatusOK, core.Success(data))
}

// OKWithMessage answers 200 with a success envelope carrying a message.
func OKWithMessage[T any](data T, message string) Response {
	return JSON(http.StatusOK, core.SuccessWithMessage(data, message))
}

// Created answers 201 with a success envelope.
func Created[T any](data T) Response {
	return JSON(http.StatusCreated, core.Success(data))
}

// Paged answers 200 with a paginated envelope. totalPages is derived from
// total and size.
func Paged[T any](items []T, page, size int, total int64) Response {
	return JSON(http.StatusOK, core.Paged(items, page, size, total, core.TotalPagesFor(total, size)))
}

type failResponse struct {
	err error
}

func (f failResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Fail hands err to the error handler of the wrapping handler, which picks
// the status and body.
//
//	user, err := users.Find(ctx, req.ID)
//	if err != nil {
//		return handler.Fail(err)
//	}
func Fail(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return failResponse{err: err}
}
