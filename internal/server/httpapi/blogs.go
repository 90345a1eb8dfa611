package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
)

type blogBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	startDate, err := parseDateParam(q, "startDate")
	if err != nil {
		s.writeError(w, r, "fetching blogs", err)
		return
	}
	endDate, err := parseDateParam(q, "endDate")
	if err != nil {
		s.writeError(w, r, "fetching blogs", err)
		return
	}
	page, err := parseWindowParam(q, "page")
	if err != nil {
		s.writeError(w, r, "fetching blogs", err)
		return
	}
	size, err := parseWindowParam(q, "size")
	if err != nil {
		s.writeError(w, r, "fetching blogs", err)
		return
	}

	blogs, total, err := s.blogs.List(r.Context(), services.ListQuery{
		UserID:     q.Get("userId"),
		CategoryID: q.Get("categoryId"),
		Search:     q.Get("search"),
		StartDate:  startDate,
		EndDate:    endDate,
		Page:       page,
		Size:       size,
	})
	if err != nil {
		s.writeError(w, r, "fetching blogs", err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"blogs": blogs, "total": total})
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	blog, err := s.blogs.Get(r.Context(), q.Get("userId"), q.Get("categoryId"), r.PathValue("blog"))
	if err != nil {
		s.writeError(w, r, "fetching blog", err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var body blogBody
	if err := decodeBody(r, &body, "Please fill request"); err != nil {
		s.writeError(w, r, "create blog", err)
		return
	}

	blog, err := s.blogs.Create(r.Context(), q.Get("userId"), q.Get("categoryId"), body.Title, body.Description)
	if err != nil {
		s.writeError(w, r, "create blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Blog created", "blog": blog})
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var body blogBody
	if err := decodeBody(r, &body, "Please fill request"); err != nil {
		s.writeError(w, r, "update blog", err)
		return
	}

	blog, err := s.blogs.Update(r.Context(), q.Get("userId"), q.Get("categoryId"), r.PathValue("blog"), body.Title, body.Description)
	if err != nil {
		s.writeError(w, r, "update blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Blog updated", "blog": blog})
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	blog, err := s.blogs.Delete(r.Context(), q.Get("userId"), q.Get("categoryId"), r.PathValue("blog"))
	if err != nil {
		s.writeError(w, r, "delete blog", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Blog deleted", "blog": blog})
}
