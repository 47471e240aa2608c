package wizard

import (
	"strconv"
	"strings"

	"itinerary-studio/internal/model"
)

// Field describes one scalar draft field editable through SetField.
type Field struct {
	Key       string
	Label     string
	Step      Step
	Multiline bool
}

var fields = []Field{
	{Key: "consultantName", Label: "Consultant name", Step: StepSummary},
	{Key: "consultantNumber", Label: "Consultant number", Step: StepSummary},
	{Key: "quotationDate", Label: "Quotation date", Step: StepSummary},
	{Key: "clientName", Label: "Client name", Step: StepSummary},
	{Key: "destination", Label: "Destination", Step: StepSummary},
	{Key: "duration", Label: "Duration", Step: StepSummary},
	{Key: "travelDate", Label: "Travel date", Step: StepSummary},
	{Key: "groupSize", Label: "Group size", Step: StepSummary},
	{Key: "transportDetails", Label: "Transport", Step: StepSummary},
	{Key: "sourceOfLead", Label: "Source of lead", Step: StepSummary},
	{Key: "purpose", Label: "Purpose", Step: StepSummary},
	{Key: "inclusions", Label: "Inclusions", Step: StepDetails, Multiline: true},
	{Key: "exclusions", Label: "Exclusions", Step: StepDetails, Multiline: true},
	{Key: "termsConditions", Label: "Terms & conditions", Step: StepPolicies, Multiline: true},
	{Key: "cancellationPolicy", Label: "Cancellation policy", Step: StepPolicies, Multiline: true},
	{Key: "bank.bank", Label: "Bank", Step: StepPolicies},
	{Key: "bank.accountName", Label: "Account name", Step: StepPolicies},
	{Key: "bank.accountNumber", Label: "Account number", Step: StepPolicies},
	{Key: "bank.ifscCode", Label: "IFSC code", Step: StepPolicies},
}

// FieldsFor returns the scalar fields shown on step, in display order.
func FieldsFor(step Step) []Field {
	out := []Field{}
	for _, f := range fields {
		if f.Step == step {
			out = append(out, f)
		}
	}
	return out
}

// FieldKeys lists every key SetField accepts.
func FieldKeys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}
	return out
}

func stringField(it *model.Itinerary, key string) *string {
	switch key {
	case "consultantName":
		return &it.ConsultantName
	case "consultantNumber":
		return &it.ConsultantNumber
	case "quotationDate":
		return &it.QuotationDate
	case "clientName":
		return &it.ClientName
	case "destination":
		return &it.Destination
	case "duration":
		return &it.Duration
	case "travelDate":
		return &it.TravelDate
	case "transportDetails":
		return &it.TransportDetails
	case "sourceOfLead":
		return &it.SourceOfLead
	case "purpose":
		return &it.Purpose
	case "termsConditions":
		return &it.TermsConditions
	case "cancellationPolicy":
		return &it.CancellationPolicy
	case "bank.bank":
		return &it.BankDetails.Bank
	case "bank.accountName":
		return &it.BankDetails.AccountName
	case "bank.accountNumber":
		return &it.BankDetails.AccountNumber
	case "bank.ifscCode":
		return &it.BankDetails.IFSCCode
	}
	return nil
}

// setField applies value to the draft field named key. Numbers are coerced:
// the value is always applied and a *model.ValidationError reports any
// coercion.
func setField(it *model.Itinerary, key, value string) error {
	switch key {
	case "groupSize":
		n, err := model.CoerceGroupSize(value)
		it.GroupSize = n
		return err
	case "inclusions":
		it.Inclusions = model.SplitLines(value)
		return nil
	case "exclusions":
		it.Exclusions = model.SplitLines(value)
		return nil
	}
	if p := stringField(it, key); p != nil {
		*p = value
		return nil
	}
	return &model.ValidationError{Field: "field", Value: key, Reason: "unknown field; expected one of " + strings.Join(FieldKeys(), ", ")}
}

func getField(it model.Itinerary, key string) (string, bool) {
	switch key {
	case "groupSize":
		return strconv.Itoa(it.GroupSize), true
	case "inclusions":
		return strings.Join(it.Inclusions, "\n"), true
	case "exclusions":
		return strings.Join(it.Exclusions, "\n"), true
	}
	if p := stringField(&it, key); p != nil {
		return *p, true
	}
	return "", false
}
