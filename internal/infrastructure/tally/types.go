package tally

// XML shapes returned by the Tally gateway. Tally's exports are loosely
// structured: fields may arrive as child elements or attributes, numbers
// carry thousands separators, and booleans are "Yes"/"No" text. Everything
// is decoded as strings here and coerced defensively by the extractors.

// stockItemXML is a STOCKITEM element from the Stock Items / Stock Summary
// reports.
type stockItemXML struct {
	NameAttr    string `xml:"NAME,attr"`
	Name        string `xml:"NAME"`
	Alias       string `xml:"LANGUAGENAME.LIST>NAME.LIST>NAME"`
	Parent      string `xml:"PARENT"`
	BaseUnits   string `xml:"BASEUNITS"`
	OpeningQty  string `xml:"OPENINGBALANCE"`
	OpeningRate string `xml:"OPENINGRATE"`
	OpeningVal  string `xml:"OPENINGVALUE"`
	BatchWiseOn string `xml:"ISBATCHWISEON"`
	GSTOn       string `xml:"ISGSTAPPLICABLE"`
	HSNCode     string `xml:"HSNDETAILS.LIST>HSNCODE"`
	Description string `xml:"DESCRIPTION"`

	// Stock Summary fields
	GodownName  string `xml:"GODOWNNAME"`
	ClosingQty  string `xml:"CLOSINGBALANCE"`
	ClosingRate string `xml:"CLOSINGRATE"`
	ClosingVal  string `xml:"CLOSINGVALUE"`
}

// name returns the item name, preferring the child element over the
// NAME attribute.
func (x *stockItemXML) name() string {
	if x.Name != "" {
		return x.Name
	}
	return x.NameAttr
}

// ledgerXML is a LEDGER element from the Ledger report. It covers both
// party ledgers (sundry debtors/creditors) and plain accounts.
type ledgerXML struct {
	NameAttr       string `xml:"NAME,attr"`
	Name           string `xml:"NAME"`
	Parent         string `xml:"PARENT"`
	Address        string `xml:"ADDRESS.LIST>ADDRESS"`
	CountryName    string `xml:"COUNTRYNAME"`
	Contact        string `xml:"LEDGERCONTACT"`
	Mobile         string `xml:"LEDMOBILE"`
	Email          string `xml:"EMAIL"`
	GSTIN          string `xml:"PARTYGSTIN"`
	PAN            string `xml:"INCOMETAXNUMBER"`
	CreditLimit    string `xml:"CREDITLIMIT"`
	CreditPeriod   string `xml:"BILLCREDITPERIOD"`
	OpeningBalance string `xml:"OPENINGBALANCE"`
	ClosingBalance string `xml:"CLOSINGBALANCE"`
	IsRevenue      string `xml:"ISREVENUE"`
	GSTDutyHead    string `xml:"GSTDUTYHEAD"`
	TaxClass       string `xml:"TAXCLASSIFICATIONNAME"`
}

func (x *ledgerXML) name() string {
	if x.Name != "" {
		return x.Name
	}
	return x.NameAttr
}

// voucherXML is a VOUCHER element from the Voucher Register / Inventory
// Vouchers reports.
type voucherXML struct {
	NumberAttr       string              `xml:"VCHNO,attr"`
	GUIDAttr         string              `xml:"GUID,attr"`
	Number           string              `xml:"VOUCHERNUMBER"`
	TypeName         string              `xml:"VOUCHERTYPENAME"`
	Date             string              `xml:"DATE"`
	PartyLedgerName  string              `xml:"PARTYLEDGERNAME"`
	Narration        string              `xml:"NARRATION"`
	Reference        string              `xml:"REFERENCE"`
	Amount           string              `xml:"AMOUNT"`
	IsCancelled      string              `xml:"ISCANCELLED"`
	LedgerEntries    []ledgerEntryXML    `xml:"ALLLEDGERENTRIES.LIST"`
	InventoryEntries []inventoryEntryXML `xml:"INVENTORYENTRIES.LIST"`
}

// number returns the voucher number, preferring the child element over
// the VCHNO attribute.
func (x *voucherXML) number() string {
	if x.Number != "" {
		return x.Number
	}
	return x.NumberAttr
}

// ledgerEntryXML is an ALLLEDGERENTRIES.LIST line inside a voucher.
type ledgerEntryXML struct {
	LedgerName string `xml:"LEDGERNAME"`
	Amount     string `xml:"AMOUNT"`
	CostCentre string `xml:"COSTCENTRENAME"`
	Narration  string `xml:"NARRATION"`
}

// inventoryEntryXML is an INVENTORYENTRIES.LIST line inside a voucher.
type inventoryEntryXML struct {
	StockItemName string `xml:"STOCKITEMNAME"`
	ActualQty     string `xml:"ACTUALQTY"`
	Rate          string `xml:"RATE"`
	Amount        string `xml:"AMOUNT"`
	BatchName     string `xml:"BATCHNAME"`
	GodownName    string `xml:"GODOWNNAME"`
}
