package api

import (
	"errors"
	"net/http"
	"strings"

	"cosmossdk.io/log"
	"github.com/gin-gonic/gin"

	"github.com/evrazdex/gateway-resolver/registry"
	"github.com/evrazdex/gateway-resolver/resolver"
	"github.com/evrazdex/gateway-resolver/types"
)

// PreferenceStore is a UserPreferenceStore that can also be written.
type PreferenceStore interface {
	types.UserPreferenceStore
	SetFilteredServiceProviders(providers []string) error
}

type Server struct {
	registry *registry.Registry
	prefs    PreferenceStore
	logger   log.Logger
	workers  int

	router *gin.Engine
}

func NewServer(reg *registry.Registry, prefs PreferenceStore, logger log.Logger, workers int, trustedProxies []string) (*Server, error) {
	s := &Server{
		registry: reg,
		prefs:    prefs,
		logger:   logger.With("component", "api"),
		workers:  workers,
		router:   gin.New(),
	}
	s.router.Use(gin.Recovery())
	if err := s.router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}

	s.router.GET("/gateways", s.listByKind(types.KindGateway))
	s.router.GET("/bridges", s.listByKind(types.KindBridge))
	s.router.GET("/gateways/:id", s.getGateway)
	s.router.GET("/assets/prefixed", s.getPrefixedAssets)
	s.router.GET("/settings/filtered-service-providers", s.getFilteredServiceProviders)
	s.router.PUT("/settings/filtered-service-providers", s.putFilteredServiceProviders)
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

type gatewayView struct {
	ID      types.GatewayID  `json:"id"`
	Name    string           `json:"name"`
	Kind    types.Kind       `json:"kind"`
	Enabled bool             `json:"enabled"`
	Retired bool             `json:"retired"`
	Stage   resolver.Stage   `json:"stage"`
	BaseAPI *types.Endpoints `json:"base_api,omitempty"`
	Landing string           `json:"landing,omitempty"`
	Wallet  string           `json:"wallet,omitempty"`
	Comment string           `json:"comment,omitempty"`
}

func newGatewayView(d types.GatewayDescriptor, enabled bool, stage resolver.Stage) gatewayView {
	return gatewayView{
		ID:      d.ID,
		Name:    d.Name,
		Kind:    d.Kind,
		Enabled: enabled,
		Retired: d.Retired(),
		Stage:   stage,
		BaseAPI: d.BaseAPI,
		Landing: d.Landing,
		Wallet:  d.Wallet,
		Comment: d.Comment,
	}
}

func (s *Server) listByKind(kind types.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var opts types.EvaluationOptions
		if err := c.ShouldBindQuery(&opts); err != nil {
			c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		views := []gatewayView{}
		for _, res := range s.registry.EvaluateAll(c.Request.Context(), opts, s.workers) {
			if res.Descriptor.Kind != kind {
				continue
			}
			if res.Err != nil {
				s.logger.Debug("availability check failed", "gateway", res.Descriptor.ID, "err", res.Err)
			}
			views = append(views, newGatewayView(res.Descriptor, res.Enabled, res.Stage))
		}
		c.IndentedJSON(http.StatusOK, views)
	}
}

func (s *Server) getGateway(c *gin.Context) {
	id := types.GatewayID(c.Param("id"))

	d, err := s.registry.Lookup(id)
	if errors.Is(err, types.ErrInvalidIdentifier) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "gateway not found"})
		return
	}

	var opts types.EvaluationOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	decision, err := s.registry.Evaluate(c.Request.Context(), id, opts)
	if err != nil {
		s.logger.Debug("availability check failed", "gateway", id, "err", err)
		c.IndentedJSON(http.StatusOK, newGatewayView(d, false, resolver.StageOnChain))
		return
	}
	c.IndentedJSON(http.StatusOK, newGatewayView(d, decision.Enabled, decision.Stage))
}

func (s *Server) getPrefixedAssets(c *gin.Context) {
	raw := c.Query("bases")
	if raw == "" {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "bases query parameter is required"})
		return
	}

	var bases []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			bases = append(bases, b)
		}
	}
	c.IndentedJSON(http.StatusOK, gin.H{"symbols": s.registry.DerivePrefixedAssetSymbols(bases)})
}

func (s *Server) getFilteredServiceProviders(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.prefs.FilteredServiceProviders())
}

func (s *Server) putFilteredServiceProviders(c *gin.Context) {
	var providers []string
	if err := c.ShouldBindJSON(&providers); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "expected a JSON array of gateway identifiers"})
		return
	}
	if err := s.prefs.SetFilteredServiceProviders(providers); err != nil {
		s.logger.Error("unable to store filtered service providers", "err", err)
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"message": "unable to store settings"})
		return
	}
	c.IndentedJSON(http.StatusOK, s.prefs.FilteredServiceProviders())
}
