package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	registry "github.com/carson-networks/finance-tracker/internal/category"
)

// Category is a registry entry.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color" doc:"Hex colour"`
	Icon  string `json:"icon"`
}

type ListCategoriesBody struct {
	Categories []Category `json:"categories"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesBody
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct{}

func NewListCategoriesHandler() *ListCategoriesHandler {
	return &ListCategoriesHandler{}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the fixed category registry in display order.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	all := registry.All()

	out := ListCategoriesBody{Categories: make([]Category, len(all))}
	for i, c := range all {
		out.Categories[i] = Category{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
	}
	return &ListCategoriesOutput{Body: out}, nil
}
