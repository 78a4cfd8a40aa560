package server

import (
	"context"
	"fmt"
	"net/http"

	"crm_pipeline/internal/domain/entity"
	"crm_pipeline/pkg/httpx/reply"
	"crm_pipeline/pkg/httpx/req"
	"crm_pipeline/pkg/rest"
)

//go:generate moq -rm -out deal_service_mock.gen.go . dealService:dealServiceMock
type dealService interface {
	List(ctx context.Context) ([]entity.Deal, error)
	Get(ctx context.Context, id int64) (entity.Deal, error)
	ListByContact(ctx context.Context, contactID int64) ([]entity.Deal, error)
	Create(ctx context.Context, fields entity.DealFields) (entity.Deal, error)
	Update(ctx context.Context, id int64, fields entity.DealFields) (entity.Deal, error)
	Delete(ctx context.Context, id int64) error
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var (
		deals []entity.Deal
		err   error
	)

	if raw := r.URL.Query().Get("contactId"); raw != "" {
		contactID, parseErr := parseContactID(raw)
		if parseErr != nil {
			return parseErr
		}

		deals, err = s.dealService.ListByContact(ctx, contactID)
		if err != nil {
			return fmt.Errorf("dealService.ListByContact: %w", err)
		}
	} else {
		deals, err = s.dealService.List(ctx)
		if err != nil {
			return fmt.Errorf("dealService.List: %w", err)
		}
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeals(deals))

	return nil
}

func (s DealServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(r.PathValue("id"))
	if err != nil {
		return err
	}

	deal, err := s.dealService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("dealService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) postV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DealInput

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	fields, err := newDomainDealFields(request)
	if err != nil {
		return err
	}

	deal, err := s.dealService.Create(ctx, fields)
	if err != nil {
		return fmt.Errorf("dealService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTDeal(deal))

	return nil
}

func (s DealServer) putV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(r.PathValue("id"))
	if err != nil {
		return err
	}

	var request rest.DealInput

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	fields, err := newDomainDealFields(request)
	if err != nil {
		return err
	}

	deal, err := s.dealService.Update(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("dealService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) deleteV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(r.PathValue("id"))
	if err != nil {
		return err
	}

	if err = s.dealService.Delete(ctx, id); err != nil {
		return fmt.Errorf("dealService.Delete: %w", err)
	}

	reply.NoContent(w)

	return nil
}
