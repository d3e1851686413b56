package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/alkime/gradients/internal/export"
	"github.com/alkime/gradients/pkg/gradient"
	"github.com/gin-gonic/gin"
)

// stateRequest carries the client-owned editor state. The server keeps
// nothing between requests.
type stateRequest struct {
	Stops  []gradient.ColorStop `json:"stops"`
	Config *gradient.Config     `json:"config"`
}

type updateRequest struct {
	stateRequest
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

type exportRequest struct {
	stateRequest
	Width  int `json:"width"`
	Height int `json:"height"`
}

type stateResponse struct {
	Stops        []gradient.ColorStop `json:"stops"`
	Config       gradient.Config      `json:"config"`
	CSS          string               `json:"css"`
	StopsPreview string               `json:"stopsPreview"`
	Declaration  string               `json:"declaration"`
	ID           gradient.StopID      `json:"id,omitempty"`
}

func newStateResponse(store gradient.Store) stateResponse {
	return stateResponse{
		Stops:        store.Stops(),
		Config:       store.Config(),
		CSS:          store.CSS(),
		StopsPreview: store.StopsPreviewCSS(),
		Declaration:  store.Declaration(),
	}
}

// store builds a Store from the request, rejecting invalid configs.
func (s *Server) store(req stateRequest) (gradient.Store, error) {
	cfg := gradient.DefaultConfig()
	if req.Config != nil {
		if err := req.Config.Validate(); err != nil {
			return gradient.Store{}, fmt.Errorf("invalid config: %w", err)
		}
		cfg = *req.Config
	}

	return gradient.NewStore(req.Stops, cfg, s.config.StoreOptions()), nil
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.logger.Debug("Rejected request", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// handleDefault returns the starter gradient.
func (s *Server) handleDefault(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(gradient.DefaultStore(s.config.StoreOptions())))
}

// handleCompile compiles the posted state.
func (s *Server) handleCompile(c *gin.Context) {
	var req stateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	store, err := s.store(req)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, newStateResponse(store))
}

// handleAddStop inserts a stop into the largest gap.
func (s *Server) handleAddStop(c *gin.Context) {
	var req stateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	store, err := s.store(req)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	store, id := store.Add()
	resp := newStateResponse(store)
	resp.ID = id

	s.logger.Debug("Added stop", "id", id, "stops", store.Len())
	c.JSON(http.StatusOK, resp)
}

// handleRemoveStop removes a stop. The last stop is kept.
func (s *Server) handleRemoveStop(c *gin.Context) {
	var req stateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	store, err := s.store(req)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	store = store.Remove(gradient.StopID(c.Param("id")))
	c.JSON(http.StatusOK, newStateResponse(store))
}

// handleUpdateStop sets one field of a stop.
func (s *Server) handleUpdateStop(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	field, err := gradient.ParseField(req.Field)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	store, err := s.store(req.stateRequest)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	store = store.Update(gradient.StopID(c.Param("id")), field, req.Value)
	c.JSON(http.StatusOK, newStateResponse(store))
}

// handleExport renders the posted state as an image.
func (s *Server) handleExport(c *gin.Context) {
	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		s.badRequest(c, err)
		return
	}

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	store, err := s.store(req.stateRequest)
	if err != nil {
		s.badRequest(c, err)
		return
	}

	size := export.DefaultSize
	if req.Width != 0 || req.Height != 0 {
		size = export.Size{Width: req.Width, Height: req.Height}
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, store.Stops(), store.Config(), size); err != nil {
		if errors.Is(err, export.ErrInvalidSize) {
			s.badRequest(c, err)
			return
		}

		s.logger.Error("Export failed", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})

		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
