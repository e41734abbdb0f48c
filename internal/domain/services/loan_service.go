package services

import (
	"errors"
	"math"
)

// Loan input errors.
var ErrLoanInput = errors.New("invalid loan parameters")

// LoanEstimate is the result of an EMI calculation.
type LoanEstimate struct {
	Principal      float64 `json:"principal"`
	DownPayment    float64 `json:"downPayment"`
	MonthlyEMI     float64 `json:"monthlyEmi"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TenureMonths   int     `json:"tenureMonths"`
	AnnualRatePct  float64 `json:"annualRatePct"`
	DownPaymentPct float64 `json:"downPaymentPct"`
}

// InterfaceLoanService defines the EMI calculator interface
type InterfaceLoanService interface {
	Estimate(plotPrice, downPaymentPct, annualRatePct float64, tenureYears int) (*LoanEstimate, error)
}

// LoanService computes equated monthly instalments for plot financing.
type LoanService struct{}

// NewLoanService creates a new loan service
func NewLoanService() InterfaceLoanService {
	return &LoanService{}
}

// 1 Estimate computes the EMI for a plot price after down payment.
// EMI = P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate and n the tenure
// in months. A zero interest rate degenerates to a straight division.
func (s *LoanService) Estimate(plotPrice, downPaymentPct, annualRatePct float64, tenureYears int) (*LoanEstimate, error) {
	if plotPrice <= 0 || tenureYears <= 0 || downPaymentPct < 0 || downPaymentPct >= 100 || annualRatePct < 0 {
		return nil, ErrLoanInput
	}

	downPayment := plotPrice * downPaymentPct / 100
	principal := plotPrice - downPayment
	months := tenureYears * 12
	monthlyRate := annualRatePct / 1200

	var emi float64
	if monthlyRate == 0 {
		emi = principal / float64(months)
	} else {
		factor := math.Pow(1+monthlyRate, float64(months))
		emi = principal * monthlyRate * factor / (factor - 1)
	}

	totalPayment := emi * float64(months)
	return &LoanEstimate{
		Principal:      math.Round(principal*100) / 100,
		DownPayment:    math.Round(downPayment*100) / 100,
		MonthlyEMI:     math.Round(emi*100) / 100,
		TotalPayment:   math.Round(totalPayment*100) / 100,
		TotalInterest:  math.Round((totalPayment-principal)*100) / 100,
		TenureMonths:   months,
		AnnualRatePct:  annualRatePct,
		DownPaymentPct: downPaymentPct,
	}, nil
}
