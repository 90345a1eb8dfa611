package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type categoryBody struct {
	Title string `json:"title"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		s.writeError(w, r, "fetching categories", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := decodeBody(r, &body, "Please fill request"); err != nil {
		s.writeError(w, r, "create category", err)
		return
	}

	category, err := s.categories.Create(r.Context(), r.URL.Query().Get("userId"), body.Title)
	if err != nil {
		s.writeError(w, r, "create category", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Category created", "category": category})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryBody
	if err := decodeBody(r, &body, "Please fill request"); err != nil {
		s.writeError(w, r, "update category", err)
		return
	}

	category, err := s.categories.Update(r.Context(), r.URL.Query().Get("userId"), r.PathValue("category"), body.Title)
	if err != nil {
		s.writeError(w, r, "update category", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Category updated", "category": category})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	category, err := s.categories.Delete(r.Context(), r.URL.Query().Get("userId"), r.PathValue("category"))
	if err != nil {
		s.writeError(w, r, "delete category", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Category deleted", "category": category})
}
