package models

// OwnerInfo is the denormalized owner snapshot embedded in a store record.
type OwnerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Store mirrors the backend store record. The slug is assigned server-side
// and is the only stable public identifier.
type Store struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	StoreType     string    `json:"store_type"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Quote         string    `json:"quote"`
	Description   string    `json:"description"`
	NavbarEnabled bool      `json:"navbar_enabled"`
	LogoPosition  string    `json:"logo_position"`
	LogoURL       string    `json:"logo_url"`
	LogoAlt       string    `json:"logo_alt"`
	OwnerInfo     OwnerInfo `json:"owner_info"`
}

// OwnedBy reports whether edit controls should render for the given user id.
func (s *Store) OwnedBy(userID string) bool {
	return userID != "" && s.OwnerInfo.ID == userID
}

// LogoPositions are the values the backend accepts for logo_position.
var LogoPositions = []string{"left", "center", "right", "none"}

func ValidLogoPosition(p string) bool {
	for _, v := range LogoPositions {
		if p == v {
			return true
		}
	}
	return false
}
