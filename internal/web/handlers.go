package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasksync/internal/service"
	"tasksync/internal/tasksync"
)

type pageData struct {
	Title      string
	Notices    []tasksync.Notice
	ListNotice *tasksync.Notice
	Tasks      []service.Task
	Statuses   []service.Status
}

// render fetches the current tasks and renders the page. Every response
// reflects the store as it is now; nothing is kept between requests.
func (s *Server) render(c *gin.Context, code int, notices ...tasksync.Notice) {
	tasks, err := s.ctrl.List(c.Request.Context())

	data := pageData{
		Title:    "Task Manager",
		Notices:  notices,
		Tasks:    tasks,
		Statuses: service.Statuses(),
	}
	if n, ok := s.msgs.List(tasks, err); ok {
		data.ListNotice = &n
	}

	c.HTML(code, "index.html", data)
}

func (s *Server) handleIndex(c *gin.Context) {
	s.render(c, http.StatusOK)
}

func (s *Server) handleCreate(c *gin.Context) {
	status, ok := s.formStatus(c)
	if !ok {
		return
	}

	err := s.ctrl.Create(c.Request.Context(), c.PostForm("description"), status)
	s.render(c, http.StatusOK, s.msgs.Create(err))
}

func (s *Server) handleUpdate(c *gin.Context) {
	id := c.Param("id")
	status, ok := s.formStatus(c)
	if !ok {
		return
	}

	err := s.ctrl.Update(c.Request.Context(), id, c.PostForm("description"), status)
	s.render(c, http.StatusOK, s.msgs.UpdateNotices(id, err)...)
}

func (s *Server) handleDelete(c *gin.Context) {
	id := c.Param("id")

	err := s.ctrl.Delete(c.Request.Context(), id)
	s.render(c, http.StatusOK, s.msgs.Delete(id, err))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// formStatus parses the status field. On failure it renders the page with
// an error and reports false.
func (s *Server) formStatus(c *gin.Context) (service.Status, bool) {
	raw := c.PostForm("status")
	status, err := service.ParseStatus(raw)
	if err != nil {
		s.render(c, http.StatusBadRequest, tasksync.Notice{
			Level: tasksync.LevelError,
			Text:  fmt.Sprintf("Invalid status: %q", raw),
		})
		return "", false
	}
	return status, true
}
