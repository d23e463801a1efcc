// Package viewstate models the store-detail edit workflow as a single
// tagged state instead of independent dialog flags, so a page can never be
// editing the store and a product at the same time.
package viewstate

// Mode enumerates the store-detail view states.
type Mode int

const (
	Viewing Mode = iota
	EditingStore
	CreatingProduct
	EditingProduct
)

func (m Mode) String() string {
	switch m {
	case EditingStore:
		return "editing-store"
	case CreatingProduct:
		return "creating-product"
	case EditingProduct:
		return "editing-product"
	default:
		return "viewing"
	}
}

// State is the resolved view state. ProductID is set only for EditingProduct.
type State struct {
	Mode      Mode
	ProductID string
}

func (s State) Editing() bool { return s.Mode != Viewing }

// Resolve maps request parameters onto a State. Non-owners always view.
// When parameters conflict, store editing wins over product states and
// creation wins over an id-less edit, so no impossible combination leaks
// into rendering.
func Resolve(isOwner bool, edit, productID string, newProduct bool) State {
	if !isOwner {
		return State{Mode: Viewing}
	}
	switch {
	case edit == "store":
		return State{Mode: EditingStore}
	case edit == "product" && productID != "":
		return State{Mode: EditingProduct, ProductID: productID}
	case newProduct:
		return State{Mode: CreatingProduct}
	default:
		return State{Mode: Viewing}
	}
}
