package utils

import "github.com/gofiber/fiber/v2"

// APIResponse describes the common structure for successful API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope produced for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Status  int    `json:"status"`
}

// SendSuccess sends a successful JSON response with a message.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}

	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	return SendErrorWithCode(c, status, 0, message)
}

// SendErrorWithCode sends an error response carrying an application error code.
// A zero code is omitted from the payload.
func SendErrorWithCode(c *fiber.Ctx, status, code int, message string) error {
	if message == "" {
		message = "error"
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
		Status:  status,
	})
}

// SendAppError sends the envelope for a typed application error.
func SendAppError(c *fiber.Ctx, appErr *AppError) error {
	if appErr == nil {
		return SendError(c, fiber.StatusInternalServerError, "")
	}
	return SendErrorWithCode(c, appErr.Status, appErr.Code, appErr.Message)
}
