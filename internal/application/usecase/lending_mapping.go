package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
)

func toBorrowerResponse(b *entity.Borrower) dto.BorrowerResponse {
	return dto.BorrowerResponse{
		ID:           b.ID,
		CI:           b.CI,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Address:      b.Address,
		Email:        b.Email,
		Phone:        b.Phone,
		BirthDate:    b.BirthDate,
		ClientStatus: b.ClientStatus,
		RegisteredAt: b.RegisteredAt,
		RegisteredBy: b.RegisteredBy,
		PhotoBase64:  b.PhotoBase64,
	}
}

func toLoanResponse(l *entity.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:               l.ID,
		LoanRequestID:    l.LoanRequestID,
		BorrowerID:       l.BorrowerID,
		Principal:        l.Principal,
		InstallmentCount: l.InstallmentCount,
		InterestRate:     l.InterestRate,
		IssuedAt:         l.IssuedAt,
		DueAt:            l.DueAt,
		Status:           string(l.Status),
	}
}

func toLoanResponses(list []*entity.Loan) []dto.LoanResponse {
	out := make([]dto.LoanResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLoanResponse(l))
	}
	return out
}

// toInstallmentResponse aplica la derivación de MOROSA con la fecha de hoy.
func toInstallmentResponse(c *entity.Installment, today string) dto.InstallmentResponse {
	return dto.InstallmentResponse{
		ID:             c.ID,
		LoanID:         c.LoanID,
		BorrowerID:     c.BorrowerID,
		SequenceNumber: c.SequenceNumber,
		Amount:         c.Amount,
		DueDate:        c.DueDate,
		PaidDate:       c.PaidDate,
		Status:         string(effectiveStatus(*c, today)),
	}
}

// toSummaries cuotas resumidas con saldo pendiente del préstamo después de cada cuota.
func toSummaries(list []*entity.Installment, today string) []dto.InstallmentSummaryResponse {
	total := decimal.Zero
	for _, c := range list {
		total = total.Add(c.Amount)
	}
	out := make([]dto.InstallmentSummaryResponse, 0, len(list))
	acc := decimal.Zero
	for _, c := range list {
		acc = acc.Add(c.Amount)
		out = append(out, dto.InstallmentSummaryResponse{
			LoanID:         c.LoanID,
			SequenceNumber: c.SequenceNumber,
			Amount:         c.Amount,
			Balance:        total.Sub(acc),
			Status:         string(effectiveStatus(*c, today)),
			DueDate:        c.DueDate,
		})
	}
	return out
}

func toLoanApplicationResponse(r *entity.LoanRequest, b *entity.Borrower) dto.LoanApplicationResponse {
	out := dto.LoanApplicationResponse{
		ID:               r.ID,
		BorrowerID:       r.BorrowerID,
		EmployeeID:       r.EmployeeID,
		Amount:           r.Amount,
		InstallmentCount: r.InstallmentCount,
		SubmittedAt:      r.SubmittedAt,
		DecidedAt:        r.DecidedAt,
		Status:           string(r.Status),
		Reason:           r.RejectionReason,
	}
	if b != nil {
		out.BorrowerFirstName, out.BorrowerLastName, out.BorrowerCI = b.FirstName, b.LastName, b.CI
	}
	return out
}

func toRefinancingResponse(r *entity.RefinancingRequest) dto.RefinancingResponse {
	return dto.RefinancingResponse{
		ID:                  r.ID,
		LoanID:              r.LoanID,
		BorrowerID:          r.BorrowerID,
		Status:              string(r.Status),
		NewInstallmentCount: r.NewInstallmentCount,
		RequestedAt:         r.RequestedAt,
		DecidedAt:           r.DecidedAt,
		BorrowerComment:     r.BorrowerComment,
		EmployeeComment:     r.EmployeeComment,
		DeciderID:           r.DeciderID,
	}
}

func toRefinancingResponses(list []*entity.RefinancingRequest) []dto.RefinancingResponse {
	out := make([]dto.RefinancingResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRefinancingResponse(r))
	}
	return out
}

func toDetailResponses(in []entity.BulkLoadDetail) []dto.BulkLoadDetailResponse {
	out := make([]dto.BulkLoadDetailResponse, 0, len(in))
	for _, d := range in {
		out = append(out, dto.BulkLoadDetailResponse{Line: d.Line, Reason: d.Reason})
	}
	return out
}
