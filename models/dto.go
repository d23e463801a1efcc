package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" form:"firstName" binding:"required"`
	LastName  string `json:"lastName" form:"lastName" binding:"required"`
	Phone     string `json:"phone" form:"phone"`
	Role      string `json:"role" form:"role" binding:"omitempty,oneof=client seller"`
	Plan      string `json:"plan" form:"plan" binding:"omitempty,oneof=none free pro business"`
	Name      string `json:"name" form:"name"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name,omitempty" form:"name"`
	FirstName string `json:"first_name,omitempty" form:"first_name"`
	LastName  string `json:"last_name,omitempty" form:"last_name"`
	Phone     string `json:"phone,omitempty" form:"phone"`
	Plan      string `json:"plan,omitempty" form:"plan"`
}

// StoreForm carries the multipart fields of store create and update. The
// logo file itself travels separately as a form file part.
type StoreForm struct {
	Name          string `form:"name" binding:"required"`
	StoreType     string `form:"store_type"`
	Email         string `form:"email"`
	Phone         string `form:"phone"`
	Quote         string `form:"quote"`
	Description   string `form:"description"`
	NavbarEnabled bool   `form:"navbar_enabled"`
	LogoPosition  string `form:"logo_position" binding:"omitempty,oneof=left center right none"`
	LogoAlt       string `form:"logo_alt"`
}

// ProductForm carries the multipart fields of product create and update.
// Prices stay free-text here; they are only parsed at submit time.
type ProductForm struct {
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description"`
	OldPrice     string `form:"old_price"`
	CurrentPrice string `form:"current_price"`
}
