package facet

import (
	"errors"
	"fmt"

	"facet-reconciler/core/args"
	"facet-reconciler/core/logger"
	"facet-reconciler/core/reconcile"
	"facet-reconciler/feature/facet/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for facet reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the facet routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/facet")
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/fields/:platform", h.HandleFields)

	projects := group.Group("/projects/:project")
	projects.Delete("/", h.HandleDeleteProject)
	projects.Get("/plan", h.HandlePlan)
	projects.Post("/apply", h.HandleApply)
	projects.Put("/modules/:module", h.HandlePutModule)
	projects.Delete("/modules/:module", h.HandleDeleteModule)
	projects.Put("/defaults/:platform", h.HandlePutDefaults)
}

// HandleReconcile reconciles one module sent in the request body.
// @Summary Reconcile Module
// @Description Reconciles one module sent inline and returns the proposed bucket and the SDK decision.
// @Tags facet
// @Accept json
// @Produce json
// @Param request body models.ReconcileRequest true "Module, defaults, SDK environment and siblings"
// @Success 200 {object} map[string]interface{} "Module Result"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, l, "Invalid reconcile request", fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	result, err := h.service.Reconcile(req)
	if err != nil {
		return h.fail(c, l, "Inline reconcile failed", err)
	}
	return c.JSON(result)
}

// HandleFields lists the classified schema of a platform.
// @Summary List Fields
// @Description Lists the classified compiler-argument schema of a platform.
// @Tags facet
// @Produce json
// @Param platform path string true "Platform (jvm, js, common)"
// @Success 200 {object} models.FieldsReport "Fields Report"
// @Failure 400 {object} map[string]string "Unknown Platform"
// @Security ApiKeyAuth
// @Router /facet/fields/{platform} [get]
func (h *Handler) HandleFields(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Fields(c.Params("platform"))
	if err != nil {
		return h.fail(c, l, "Field listing failed", err)
	}
	return c.JSON(report)
}

// HandlePlan returns the reconcile plan of a project.
// Query: skip_sdk=true disables SDK resolution.
// @Summary Plan Project
// @Description Reconciles every stored module of a project without writing anything.
// @Tags facet
// @Produce json
// @Param project path string true "Project name"
// @Param skip_sdk query boolean false "Skip SDK resolution"
// @Success 200 {object} map[string]interface{} "Reconcile Plan"
// @Failure 400 {object} map[string]string "Invalid Project"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/projects/{project}/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	project := c.Params("project")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("project", project))

	plan, err := h.service.Plan(c.Context(), project, c.QueryBool("skip_sdk"))
	if err != nil {
		return h.fail(c, l, "Plan failed", err)
	}
	return c.JSON(plan)
}

// HandleApply plans a project and applies the plan.
// Query: confirm=true is required to execute, dry_run=true only plans.
// @Summary Apply Project Plan
// @Description Plans a project and writes the proposed buckets and SDK bindings. Requires confirm=true unless dry_run=true.
// @Tags facet
// @Produce json
// @Param project path string true "Project name"
// @Param confirm query boolean false "Confirm the apply"
// @Param dry_run query boolean false "Only plan"
// @Param skip_sdk query boolean false "Skip SDK resolution"
// @Success 200 {object} models.ApplyReport "Apply Report"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 503 {object} map[string]string "Registry Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/projects/{project}/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	project := c.Params("project")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("project", project))

	opts := reconcile.ReconcileOptions{
		DryRun:    c.QueryBool("dry_run"),
		Confirmed: c.QueryBool("confirm"),
		SkipSdk:   c.QueryBool("skip_sdk"),
	}
	report, err := h.service.Apply(c.Context(), project, opts)
	if err != nil {
		return h.fail(c, l, "Apply failed", err)
	}
	return c.JSON(report)
}

// HandlePutModule stores a module snapshot.
// @Summary Store Module
// @Description Stores the facet snapshot of one module.
// @Tags facet
// @Accept json
// @Param project path string true "Project name"
// @Param module path string true "Module name"
// @Param snapshot body models.ModuleSnapshot true "Module snapshot"
// @Success 204 "Stored"
// @Failure 400 {object} map[string]string "Invalid Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/projects/{project}/modules/{module} [put]
func (h *Handler) HandlePutModule(c *fiber.Ctx) error {
	project := c.Params("project")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("project", project))

	var snap models.ModuleSnapshot
	if err := c.BodyParser(&snap); err != nil {
		return h.fail(c, l, "Invalid module snapshot", fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}
	snap.Name = c.Params("module")

	if err := h.service.PutModule(c.Context(), project, snap); err != nil {
		return h.fail(c, l, "Module upload failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePutDefaults stores the default bucket of a platform.
// @Summary Store Platform Defaults
// @Description Stores the default argument bucket of a platform for a project.
// @Tags facet
// @Accept json
// @Param project path string true "Project name"
// @Param platform path string true "Platform (jvm, js, common)"
// @Param defaults body map[string]interface{} true "Default bucket"
// @Success 204 "Stored"
// @Failure 400 {object} map[string]string "Invalid Bucket"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/projects/{project}/defaults/{platform} [put]
func (h *Handler) HandlePutDefaults(c *fiber.Ctx) error {
	project := c.Params("project")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("project", project))

	defaults := args.NewBucket()
	if err := c.BodyParser(defaults); err != nil {
		return h.fail(c, l, "Invalid default bucket", fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	if err := h.service.PutDefaults(c.Context(), project, c.Params("platform"), defaults); err != nil {
		return h.fail(c, l, "Defaults upload failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteModule removes a module from a project.
// @Summary Delete Module
// @Description Removes a module snapshot and its SDK binding.
// @Tags facet
// @Param project path string true "Project name"
// @Param module path string true "Module name"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/projects/{project}/modules/{module} [delete]
func (h *Handler) HandleDeleteModule(c *fiber.Ctx) error {
	project := c.Params("project")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("project", project))

	if err := h.service.DeleteModule(c.Context(), project, c.Params("module")); err != nil {
		return h.fail(c, l, "Module delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProject removes a project.
// @Summary Delete Project
// @Description Removes every stored object of a project and forgets its SDK bindings.
// @Tags facet
// @Produce json
// @Param project path string true "Project name"
// @Success 200 {object} models.DeleteReport "Delete Report"
// @Failure 400 {object} map[string]string "Invalid Project"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /facet/projects/{project} [delete]
func (h *Handler) HandleDeleteProject(c *fiber.Ctx) error {
	project := c.Params("project")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("project", project))

	report, err := h.service.DeleteProject(c.Context(), project)
	if err != nil {
		return h.fail(c, l, "Project delete failed", err)
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case IsInvalidInput(err):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrRegistryUnavailable):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
