package officer

// StructureResponse is the wire shape of a resolved salary structure.
// Components are rounded to two decimals at this edge only.
type StructureResponse struct {
	BasicPay            string `json:"basic_pay"`
	HRA                 string `json:"hra"`
	ConveyanceAllowance string `json:"conveyance_allowance"`
	MedicalAllowance    string `json:"medical_allowance"`
	SpecialAllowance    string `json:"special_allowance"`
	DA                  string `json:"da"`
	TransportAllowance  string `json:"transport_allowance"`
	OtherAllowances     string `json:"other_allowances"`
	Total               string `json:"total"`

	Statutory StatutoryResponse `json:"statutory"`
}

type StatutoryResponse struct {
	PFApplicable  bool   `json:"pf_applicable"`
	ESIApplicable bool   `json:"esi_applicable"`
	PTApplicable  bool   `json:"pt_applicable"`
	PTState       string `json:"pt_state,omitempty"`
}

func (s SalaryStructure) ToResponse(statutory StatutoryInfo) StructureResponse {
	return StructureResponse{
		BasicPay:            s.BasicPay.StringFixed(2),
		HRA:                 s.HRA.StringFixed(2),
		ConveyanceAllowance: s.ConveyanceAllowance.StringFixed(2),
		MedicalAllowance:    s.MedicalAllowance.StringFixed(2),
		SpecialAllowance:    s.SpecialAllowance.StringFixed(2),
		DA:                  s.DA.StringFixed(2),
		TransportAllowance:  s.TransportAllowance.StringFixed(2),
		OtherAllowances:     s.OtherAllowances.StringFixed(2),
		Total:               s.Total().StringFixed(2),
		Statutory: StatutoryResponse{
			PFApplicable:  statutory.PFApplicable,
			ESIApplicable: statutory.ESIApplicable,
			PTApplicable:  statutory.PTApplicable,
			PTState:       statutory.PTState,
		},
	}
}
