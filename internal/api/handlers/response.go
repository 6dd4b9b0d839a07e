package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

const msgInternalError = "Erro interno, tente novamente"

// Варианты уведомлений клиента
const (
	VariantSuccess     = "success"
	VariantDestructive = "destructive"
)

// Notification уведомление, которое клиент показывает пользователю
type Notification struct {
	Variant     string `json:"variant"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Success уведомление об успешном действии
func Success(title, description string) *Notification {
	return &Notification{Variant: VariantSuccess, Title: title, Description: description}
}

// Failure уведомление об ошибке
func Failure(title, description string) *Notification {
	return &Notification{Variant: VariantDestructive, Title: title, Description: description}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error        string        `json:"error"`
	Notification *Notification `json:"notification,omitempty"`
	Redirect     string        `json:"redirect,omitempty"`
}

// RespondJSON пишет data как JSON. nil тело не пишется.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondFailure ошибка с уведомлением для пользователя
func RespondFailure(w http.ResponseWriter, status int, message string, n *Notification) {
	RespondJSON(w, status, ErrorResponse{Error: message, Notification: n})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnauthorized 401 с маршрутом, куда клиенту нужно перейти для входа
func RespondUnauthorized(w http.ResponseWriter, message, redirect string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: message, Redirect: redirect})
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса в v. Пустое тело считается ошибкой.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}
