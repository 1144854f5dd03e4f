package dto

// CreateCategoryRequest cuerpo para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest cuerpo para renombrar una categoría.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría con su conteo de productos vinculados.
type CategoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalProducts int64  `json:"total_products"`
}

// CategoryListResponse listado paginado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
