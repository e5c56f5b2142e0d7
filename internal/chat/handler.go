package chat

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"sniptaste/internal/archive"
	"sniptaste/internal/catalog"
	"sniptaste/internal/engine"
	"sniptaste/internal/order"
	"sniptaste/internal/session"
)

// Handler serves the turn-processing contract over HTTP and keeps
// the per-conversation states. The engine pointer is swappable so
// an admin menu reload takes effect without a restart.
type Handler struct {
	mu       sync.RWMutex
	eng      *engine.Engine
	sessions *session.Store
	repo     archive.Repository
	phone    string
}

func NewHandler(eng *engine.Engine, sessions *session.Store, repo archive.Repository, phone string) *Handler {
	return &Handler{eng: eng, sessions: sessions, repo: repo, phone: phone}
}

func (h *Handler) engine() *engine.Engine {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.eng
}

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

type chatResponse struct {
	ConversationID string   `json:"conversation_id"`
	Reply          string   `json:"reply"`
	Options        []string `json:"options"`
	Intent         string   `json:"intent"`
	Phase          string   `json:"phase"`
}

// Chat handles one conversational turn.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	s := h.sessions.GetOrCreate(req.ConversationID)
	eng := h.engine()

	var res engine.Response
	s.Turn(func(prior order.State) order.State {
		res = eng.Process(req.Message, prior)
		return res.State
	})

	// archiving never blocks the reply
	if res.Completed != nil && h.repo != nil {
		rec := &archive.Record{
			ConversationID: s.ID,
			Summary:        res.Completed.Summary,
			Total:          res.Completed.Total,
			Method:         res.Completed.Method,
			Payment:        res.Completed.Payment,
		}
		if err := h.repo.Save(c.Request.Context(), rec); err != nil {
			log.Println("archive save failed:", err)
		}
	}

	c.JSON(http.StatusOK, chatResponse{
		ConversationID: s.ID,
		Reply:          res.Reply,
		Options:        res.Options,
		Intent:         res.Intent,
		Phase:          string(res.State.Phase),
	})
}

// Menu returns the catalog sections.
func (h *Handler) Menu(c *gin.Context) {
	cat := h.engine().Catalog()
	if cat == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": cat.Sections()})
}

type reloadRequest struct {
	MenuFile string `json:"menu_file" binding:"required"`
}

// ReloadMenu rebuilds the catalog and swaps the engine (admin only).
func (h *Handler) ReloadMenu(c *gin.Context) {
	var req reloadRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}

	cat, err := catalog.LoadFile(req.MenuFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.eng = engine.New(cat, h.phone)
	h.mu.Unlock()

	log.Println("menu reloaded from", req.MenuFile)
	c.JSON(http.StatusOK, gin.H{"message": "menu reloaded", "sections": len(cat.Sections())})
}

// RecentOrders lists the latest archived orders (admin only).
func (h *Handler) RecentOrders(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusOK, gin.H{"orders": []archive.Record{}})
		return
	}

	orders, err := h.repo.ListRecent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
