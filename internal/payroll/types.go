package payroll

// Categorical pools for generated records. Fixed so that a seeded run is
// reproducible across machines.
var (
	FirstNames = []string{"John", "Jane", "Alex", "Emily", "Michael", "Sarah", "David", "Laura"}
	LastNames  = []string{"Doe", "Smith", "Johnson", "Williams", "Brown", "Jones", "Davis", "Miller"}
	JobTitles  = []string{"Manager", "Clerk", "Engineer", "Analyst", "Technician", "Salesperson", "Administrator", "Supervisor"}
	PayPeriods = []string{"01/01-01/15", "01/16-01/31", "02/01-02/15", "02/16-02/28", "03/01-03/15", "03/16-03/31"}
)

// Distribution bounds and statutory factors.
const (
	RegularHoursMin  = 70
	RegularHoursMax  = 80
	OvertimeHoursMin = 0
	OvertimeHoursMax = 10
	BaseRateMin      = 15.0
	BaseRateMax      = 50.0

	OvertimeMultiplier = 1.5

	FederalRateMin = 0.10
	FederalRateMax = 0.15
	StateRateMin   = 0.03
	StateRateMax   = 0.06

	SocialSecurityRate = 0.062
	MedicareRate       = 0.0145

	HealthInsuranceMin = 50.0
	HealthInsuranceMax = 100.0
	RetirementMin      = 30.0
	RetirementMax      = 70.0
	OtherDeductionsMin = 10.0
	OtherDeductionsMax = 30.0
)

// Table holds one payroll register in columnar form. Every column has the
// same length; derived columns are nil until Derive has run.
type Table struct {
	EmployeeNames []string
	EmployeeIDs   []string
	JobTitles     []string
	PayPeriods    []string

	RegularHours  []int
	OvertimeHours []int
	BaseRates     []float64

	GrossWages      []float64
	FederalTax      []float64
	StateTax        []float64
	SocialSecurity  []float64
	Medicare        []float64
	HealthInsurance []float64
	Retirement      []float64
	OtherDeductions []float64
	NetPay          []float64
}

// Record is a single-row view of a Table, used for reporting and export.
type Record struct {
	EmployeeName    string  `json:"employee_name"`
	EmployeeID      string  `json:"employee_id"`
	JobTitle        string  `json:"job_title"`
	PayPeriod       string  `json:"pay_period"`
	RegularHours    int     `json:"regular_hours"`
	OvertimeHours   int     `json:"overtime_hours"`
	BaseRate        float64 `json:"base_rate"`
	GrossWages      float64 `json:"gross_wages"`
	FederalTax      float64 `json:"federal_tax"`
	StateTax        float64 `json:"state_tax"`
	SocialSecurity  float64 `json:"social_security"`
	Medicare        float64 `json:"medicare"`
	HealthInsurance float64 `json:"health_insurance"`
	Retirement      float64 `json:"retirement"`
	OtherDeductions float64 `json:"other_deductions"`
	NetPay          float64 `json:"net_pay"`
}

func (t *Table) Len() int { return len(t.EmployeeIDs) }

func (t *Table) Row(i int) Record {
	r := Record{
		EmployeeName:  t.EmployeeNames[i],
		EmployeeID:    t.EmployeeIDs[i],
		JobTitle:      t.JobTitles[i],
		PayPeriod:     t.PayPeriods[i],
		RegularHours:  t.RegularHours[i],
		OvertimeHours: t.OvertimeHours[i],
		BaseRate:      t.BaseRates[i],
	}
	if t.NetPay != nil {
		r.GrossWages = t.GrossWages[i]
		r.FederalTax = t.FederalTax[i]
		r.StateTax = t.StateTax[i]
		r.SocialSecurity = t.SocialSecurity[i]
		r.Medicare = t.Medicare[i]
		r.HealthInsurance = t.HealthInsurance[i]
		r.Retirement = t.Retirement[i]
		r.OtherDeductions = t.OtherDeductions[i]
		r.NetPay = t.NetPay[i]
	}
	return r
}

// MonetaryFields lists the derived columns in register order.
var MonetaryFields = []string{
	"gross_wages", "federal_tax", "state_tax", "social_security",
	"medicare", "health_insurance", "retirement", "other_deductions", "net_pay",
}

// Column returns the named numeric column, or nil if unknown. Names follow
// MonetaryFields plus "base_rate".
func (t *Table) Column(name string) []float64 {
	switch name {
	case "base_rate":
		return t.BaseRates
	case "gross_wages":
		return t.GrossWages
	case "federal_tax":
		return t.FederalTax
	case "state_tax":
		return t.StateTax
	case "social_security":
		return t.SocialSecurity
	case "medicare":
		return t.Medicare
	case "health_insurance":
		return t.HealthInsurance
	case "retirement":
		return t.Retirement
	case "other_deductions":
		return t.OtherDeductions
	case "net_pay":
		return t.NetPay
	default:
		return nil
	}
}
