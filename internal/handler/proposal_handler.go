package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"matrimony-be/internal/domain"
	"matrimony-be/internal/middleware"
	"matrimony-be/internal/service/proposal"
	"matrimony-be/internal/validation"
)

type ProposalHandler struct {
	proposalService proposal.Service
}

func NewProposalHandler(proposalService proposal.Service) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateProposalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	created, err := h.proposalService.Create(c.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfProposal):
			return middleware.BadRequest("Cannot send a proposal to yourself")
		case errors.Is(err, domain.ErrUserNotFound):
			return middleware.NotFound("Receiver not found")
		case errors.Is(err, domain.ErrUserInactive):
			return middleware.UnprocessableEntity("Receiver account is inactive")
		case errors.Is(err, domain.ErrDuplicateProposal):
			return middleware.Conflict("An outstanding proposal already exists between these users")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ProposalHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	params := getPaginationParams(c)

	result, err := h.proposalService.ListForUser(c.Context(), userID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ProposalHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	proposalID, err := uuid.Parse(c.Params("proposalId"))
	if err != nil {
		return middleware.BadRequest("Invalid proposal ID")
	}

	view, err := h.proposalService.GetByID(c.Context(), proposalID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			return middleware.NotFound("Proposal not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *ProposalHandler) Accept(c *fiber.Ctx) error {
	return h.respond(c, h.proposalService.Accept)
}

func (h *ProposalHandler) Reject(c *fiber.Ctx) error {
	return h.respond(c, h.proposalService.Reject)
}

func (h *ProposalHandler) Withdraw(c *fiber.Ctx) error {
	return h.respond(c, h.proposalService.Withdraw)
}

func (h *ProposalHandler) respond(c *fiber.Ctx, transition func(ctx context.Context, proposalID, actingUserID uuid.UUID) (*domain.Proposal, error)) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	proposalID, err := uuid.Parse(c.Params("proposalId"))
	if err != nil {
		return middleware.BadRequest("Invalid proposal ID")
	}

	updated, err := transition(c.Context(), proposalID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProposalNotFound):
			return middleware.NotFound("Proposal not found")
		case errors.Is(err, domain.ErrNotReceiver):
			return middleware.Forbidden("Only the receiver may respond to this proposal")
		case errors.Is(err, domain.ErrNotSender):
			return middleware.Forbidden("Only the sender may withdraw this proposal")
		case errors.Is(err, domain.ErrProposalNotPending):
			return middleware.Conflict("Proposal is no longer pending")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
