package handler

import "github.com/storekit/storefront-api/internal/core/domain"

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type adminLoginResponse struct {
	Message string       `json:"message"`
	Admin   adminSummary `json:"admin"`
}

type createUserRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

// userListResponse is the admin-panel list envelope. Its flat shape differs
// deliberately from the product list meta: the two are independent external
// contracts.
type userListResponse struct {
	Data  []domain.User `json:"data"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
}
