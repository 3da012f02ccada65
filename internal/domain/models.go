// package domain/models.go
package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric is a float64 that tolerates form-style JSON input: numbers, numeric
// strings, empty strings and garbage all decode, with anything non-numeric
// collapsing to 0.
type Numeric float64

// UnmarshalJSON implements the Number(x) || 0 coercion of the input form.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Numeric(f)
	return nil
}

// BoxDimension is one row of the packing-dimensions table. Order is display order.
type BoxDimension struct {
	BoxNo      string `json:"boxNo"`
	Dimensions string `json:"dimensions"`
}

// LineItem is one product line. Index position in the record determines the
// 1-based serial number shown in both sheets.
type LineItem struct {
	ProductName   string  `json:"productName"`
	HSNSAC        string  `json:"hsnSac"`
	PackSize      string  `json:"packSize"`
	Quantity      Numeric `json:"quantity"`
	Price         Numeric `json:"price"`
	BatchNo       string  `json:"batchNo"`
	MfgDate       string  `json:"mfgDate"`
	ExpDate       string  `json:"expDate"`
	BoxInfo       string  `json:"boxInfo"`
	GrossWeight   Numeric `json:"grossWeight"`
	NetWeight     Numeric `json:"netWeight"`
	SupplierGSTIN string  `json:"supplierGstin"`
	StateCode     string  `json:"stateCode"`
	DistCode      string  `json:"distCode"`
	GSTPercent    Numeric `json:"gstPercent"`
	UOM           string  `json:"uom"`
	EndUse        string  `json:"endUse"`
	GenericName   string  `json:"genericName"`
	Description   string  `json:"description"`
}

// Amount is quantity × price for this line.
func (it LineItem) Amount() float64 {
	return float64(it.Quantity) * float64(it.Price)
}

// InvoiceRecord is the single validated record the form collaborator supplies.
// The layout builders read it and never mutate it.
type InvoiceRecord struct {
	// Parties
	ExporterName     string `json:"exporterName"`
	ExporterAddress  string `json:"exporterAddress"`
	ExporterPhone    string `json:"exporterPhone"`
	ExporterEmail    string `json:"exporterEmail"`
	ExporterRef      string `json:"exporterRef"`
	ConsigneeName    string `json:"consigneeName"`
	ConsigneeAddress string `json:"consigneeAddress"`
	BuyerName        string `json:"buyerName"`
	BuyerOrderRef    string `json:"buyerOrderRef"`
	CHAName          string `json:"chaName"`

	// Regulatory
	IECNo        string `json:"iecNo"`
	GSTStatus    string `json:"gstStatus"`
	CompanyGSTNo string `json:"companyGstNo"`
	DrugLicNo    string `json:"drugLicNo"`
	LUTRef       string `json:"lutRef"`
	LUTDate      string `json:"lutDate"`

	// Remittance
	RemittanceRef       string `json:"remittanceRef"`
	RemittanceDate      string `json:"remittanceDate"`
	RemittanceAmount    string `json:"remittanceAmount"`
	RemittanceAvailable string `json:"remittanceAvailable"`
	RemittanceUsed      string `json:"remittanceUsed"`

	// Financials
	ProformaValue        string  `json:"proformaValue"`
	InvoiceValue110      string  `json:"invoiceValue110"`
	InvoiceValue110Round string  `json:"invoiceValue110Round"`
	ADCRate              string  `json:"adcRate"`
	INRValue             string  `json:"inrValue"`
	FreightValue         Numeric `json:"freightValue"`
	InsuranceValue       Numeric `json:"insuranceValue"`
	ExchangeRate         Numeric `json:"exchangeRate"`
	Currency             string  `json:"currency"`
	UOM                  string  `json:"uom"`

	// Logistics
	InvoiceNo        string `json:"invoiceNo"`
	InvoiceDate      string `json:"invoiceDate"`
	PackingListNo    string `json:"packingListNo"`
	PlaceOfReceipt   string `json:"placeOfReceipt"`
	PortOfLoading    string `json:"portOfLoading"`
	PortOfDischarge  string `json:"portOfDischarge"`
	FinalDestination string `json:"finalDestination"`
	PreCarriage      string `json:"preCarriage"`
	VesselFlight     string `json:"vesselFlight"`
	FlightDate       string `json:"flightDate"`
	PaymentTerms     string `json:"paymentTerms"`
	TermsOfDelivery  string `json:"termsOfDelivery"`

	// Shipping docs
	ShippingBillNo   string `json:"shippingBillNo"`
	ShippingBillDate string `json:"shippingBillDate"`
	AWBNo            string `json:"awbNo"`
	AWBDate          string `json:"awbDate"`
	PolicyNo         string `json:"policyNo"`
	PolicyDate       string `json:"policyDate"`

	// Packing summary
	TotalGrossWeight     string `json:"totalGrossWeight"`
	TotalNetWeight       string `json:"totalNetWeight"`
	TotalCorrugatedBoxes string `json:"totalCorrugatedBoxes"`
	GeneralDescription   string `json:"generalDescription"`
	GlobalIGST           string `json:"globalIgst"`

	// Manufacturer
	ManufacturerName    string `json:"manufacturerName"`
	ManufacturerAddress string `json:"manufacturerAddress"`

	// Collections
	BoxDimensions []BoxDimension `json:"boxDimensions"`
	Items         []LineItem     `json:"items"`
}

// TotalQuantity sums the coerced quantities of all line items.
func (r *InvoiceRecord) TotalQuantity() float64 {
	var total float64
	for _, it := range r.Items {
		total += float64(it.Quantity)
	}
	return total
}

// TotalAmount is the CIF value: Σ quantity × price over all line items.
func (r *InvoiceRecord) TotalAmount() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.Amount()
	}
	return total
}

// FOBValue is CIF minus freight minus insurance. Absent freight/insurance
// decode to 0, so the subtraction is always defined.
func (r *InvoiceRecord) FOBValue() float64 {
	return r.TotalAmount() - float64(r.FreightValue) - float64(r.InsuranceValue)
}

// IGSTPaid reports whether the GST status selects the payment-of-tax
// declaration variant (status contains "PAID", any case).
func (r *InvoiceRecord) IGSTPaid() bool {
	return strings.Contains(strings.ToUpper(r.GSTStatus), "PAID")
}
