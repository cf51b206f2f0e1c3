// Package httpserver exposes the pantry service as a JSON HTTP API. The
// caller supplies the user id as an opaque path segment; authentication is
// an upstream concern.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nstepura/pantry-keeper/internal/errs"
	"github.com/nstepura/pantry-keeper/internal/metrics"
	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/service"
)

// Pinger reports storage liveness for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server wires services into HTTP handlers.
type Server struct {
	inventory service.InventoryService
	recipes   service.RecipeService
	feed      service.FeedService
	plans     service.MealPlanService
	db        Pinger
	log       *zap.Logger
}

// New constructs a Server with injected services.
func New(
	inventory service.InventoryService,
	recipes service.RecipeService,
	feed service.FeedService,
	plans service.MealPlanService,
	db Pinger,
	log *zap.Logger,
) *Server {
	return &Server{inventory: inventory, recipes: recipes, feed: feed, plans: plans, db: db, log: log}
}

// Handler builds the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/users/{userID}/inventory", s.listInventory)
	mux.HandleFunc("POST /api/users/{userID}/inventory", s.addIngredient)
	mux.HandleFunc("GET /api/users/{userID}/inventory/{itemID}", s.getIngredient)
	mux.HandleFunc("PATCH /api/users/{userID}/inventory/{itemID}", s.updateIngredientQuantity)
	mux.HandleFunc("DELETE /api/users/{userID}/inventory/{itemID}", s.deleteIngredient)

	mux.HandleFunc("GET /api/recipes", s.listRecipes)
	mux.HandleFunc("GET /api/users/{userID}/feasibility", s.classify)
	mux.HandleFunc("POST /api/users/{userID}/recipes/{recipeID}/made", s.markAsMade)

	mux.HandleFunc("GET /api/feed", s.listFeed)

	mux.HandleFunc("GET /api/users/{userID}/mealplans", s.listMealPlans)
	mux.HandleFunc("POST /api/users/{userID}/mealplans", s.addMealPlan)
	mux.HandleFunc("DELETE /api/users/{userID}/mealplans/{planID}", s.deleteMealPlan)

	mux.HandleFunc("GET /healthz", s.healthz)
	mux.HandleFunc("GET /readyz", s.readyz)
	mux.Handle("GET /metrics", metrics.Handler())

	return Chain(Recover(s.log), RequestID, Logging(s.log), Measure(mux))(mux)
}

// --- DTOs (field names follow the stored entity shape) ---

type ingredientDTO struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	IngredientName string          `json:"ingredientName"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate *time.Time      `json:"expirationDate,omitempty"`
	DateAdded      time.Time       `json:"dateAdded"`
}

type addIngredientDTO struct {
	IngredientName string          `json:"ingredientName"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate *time.Time      `json:"expirationDate,omitempty"`
}

type recipeDTO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Nutrition   model.Nutrition    `json:"nutrition"`
	DietaryTags []string           `json:"dietaryTags"`
}

type feasibilityDTO struct {
	Possible       []string `json:"possible"`
	AlmostPossible []string `json:"almostPossible"`
}

type feedEventDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RecipeID  string    `json:"recipeId"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Timestamp time.Time `json:"timestamp"`
}

type mealPlanDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	RecipeID string `json:"recipeId"`
	Date     string `json:"date"`
}

type addMealPlanDTO struct {
	RecipeID string `json:"recipeId"`
	Date     string `json:"date"`
}

func toIngredientDTO(it *model.InventoryItem) ingredientDTO {
	return ingredientDTO{
		ID:             it.ID.String(),
		UserID:         it.UserID,
		IngredientName: it.IngredientName,
		Quantity:       it.Quantity,
		Unit:           it.Unit,
		ExpirationDate: it.ExpirationDate,
		DateAdded:      it.DateAdded,
	}
}

func toMealPlanDTO(p *model.MealPlan) mealPlanDTO {
	return mealPlanDTO{
		ID:       p.ID.String(),
		UserID:   p.UserID,
		RecipeID: p.RecipeID.String(),
		Date:     p.Date.Format("2006-01-02"),
	}
}

// --- Inventory ---

func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	items, err := s.inventory.ListIngredients(r.Context(), r.PathValue("userID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]ingredientDTO, 0, len(items))
	for i := range items {
		out = append(out, toIngredientDTO(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addIngredient(w http.ResponseWriter, r *http.Request) {
	var in addIngredientDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	item, err := s.inventory.AddIngredient(r.Context(), r.PathValue("userID"), service.AddIngredientInput{
		IngredientName: in.IngredientName,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		ExpirationDate: in.ExpirationDate,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toIngredientDTO(item))
}

func (s *Server) getIngredient(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.FromString(r.PathValue("itemID"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	item, err := s.inventory.GetIngredient(r.Context(), r.PathValue("userID"), itemID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toIngredientDTO(item))
}

type updateQuantityDTO struct {
	Quantity decimal.Decimal `json:"quantity"`
}

func (s *Server) updateIngredientQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.FromString(r.PathValue("itemID"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	var in updateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	item, err := s.inventory.UpdateQuantity(r.Context(), r.PathValue("userID"), itemID, in.Quantity)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toIngredientDTO(item))
}

func (s *Server) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.FromString(r.PathValue("itemID"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := s.inventory.DeleteIngredient(r.Context(), r.PathValue("userID"), itemID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Recipes ---

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.ListCatalog(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]recipeDTO, 0, len(recipes))
	for i := range recipes {
		rec := &recipes[i]
		out = append(out, recipeDTO{
			ID:          rec.ID.String(),
			Name:        rec.Name,
			Ingredients: rec.Ingredients,
			Nutrition:   rec.Nutrition,
			DietaryTags: rec.DietaryTags,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) classify(w http.ResponseWriter, r *http.Request) {
	res, err := s.recipes.Classify(r.Context(), r.PathValue("userID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	dto := feasibilityDTO{Possible: []string{}, AlmostPossible: []string{}}
	for _, id := range res.Possible {
		dto.Possible = append(dto.Possible, id.String())
	}
	for _, id := range res.Almost {
		dto.AlmostPossible = append(dto.AlmostPossible, id.String())
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) markAsMade(w http.ResponseWriter, r *http.Request) {
	recipeID, err := uuid.FromString(r.PathValue("recipeID"))
	if err != nil {
		http.Error(w, "bad recipe id", http.StatusBadRequest)
		return
	}
	ev, err := s.recipes.MarkAsMade(r.Context(), r.PathValue("userID"), recipeID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	metrics.RecipesMadeTotal.Inc()
	writeJSON(w, http.StatusCreated, toFeedEventDTO(ev))
}

// --- Feed ---

func toFeedEventDTO(ev *model.FeedEvent) feedEventDTO {
	return feedEventDTO{
		ID:        ev.ID.String(),
		UserID:    ev.UserID,
		RecipeID:  ev.RecipeID.String(),
		Content:   ev.Content,
		Likes:     ev.Likes,
		Timestamp: ev.CreatedAt,
	}
}

func (s *Server) listFeed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	events, err := s.feed.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]feedEventDTO, 0, len(events))
	for i := range events {
		out = append(out, toFeedEventDTO(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// --- Meal plans ---

func (s *Server) listMealPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.plans.ListForUser(r.Context(), r.PathValue("userID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]mealPlanDTO, 0, len(plans))
	for i := range plans {
		out = append(out, toMealPlanDTO(&plans[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addMealPlan(w http.ResponseWriter, r *http.Request) {
	var in addMealPlanDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}
	recipeID, err := uuid.FromString(in.RecipeID)
	if err != nil {
		http.Error(w, "bad recipe id", http.StatusBadRequest)
		return
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		http.Error(w, "bad date", http.StatusBadRequest)
		return
	}
	plan, err := s.plans.Add(r.Context(), r.PathValue("userID"), recipeID, date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMealPlanDTO(plan))
}

func (s *Server) deleteMealPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := uuid.FromString(r.PathValue("planID"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if err := s.plans.Delete(r.Context(), r.PathValue("userID"), planID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps sentinel errors onto status codes; everything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errs.ErrRecipeNotFound), errors.Is(err, errs.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		s.log.Error("request failed", zap.Error(err))
		http.Error(w, "internal", http.StatusInternalServerError)
	}
}
