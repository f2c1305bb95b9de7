package reference

// ChainMember is one company inside an industry chain.
type ChainMember struct {
	Name string
	Role string
}

// ChainRelationship is a curated weighted edge between two chain members.
type ChainRelationship struct {
	Source   string
	Target   string
	Strength float64
	Type     string
}

// IndustryChain is a static supply-chain/competitive graph for one sector.
type IndustryChain struct {
	Name          string
	Description   string
	Companies     map[string]ChainMember
	Relationships []ChainRelationship
}

// industryChains is curated reference data, not derived from prices.
var industryChains = []IndustryChain{
	{
		Name:        "반도체",
		Description: "반도체 산업 체인",
		Companies: map[string]ChainMember{
			"005930": {Name: "삼성전자", Role: "IDM (설계+제조)"},
			"000660": {Name: "SK하이닉스", Role: "메모리 반도체"},
			"042700": {Name: "한미반도체", Role: "장비"},
			"036830": {Name: "솔브레인홀딩스", Role: "소재"},
		},
		Relationships: []ChainRelationship{
			{"005930", "000660", 0.8, "경쟁사/동종업"},
			{"005930", "042700", 0.5, "고객-장비사"},
			{"000660", "042700", 0.5, "고객-장비사"},
		},
	},
	{
		Name:        "ESS",
		Description: "ESS/에너지저장 산업 체인",
		Companies:   map[string]ChainMember{},
	},
	{
		Name:        "원전",
		Description: "원자력 산업 체인",
		Companies:   map[string]ChainMember{},
	},
}

// Chains returns the static industry-chain table.
func Chains() []IndustryChain {
	return industryChains
}

// companyCodes maps company names with analyst coverage to their codes,
// for companies that may be missing from the listing CSV.
var companyCodes = map[string]string{
	"SK하이닉스":      "000660",
	"두산":          "000150",
	"두산에너빌리티":     "034020",
	"롯데에너지머티리얼즈":  "051910",
	"삼성SDI":       "006400",
	"삼성전자":        "005930",
	"한중엔시에스":      "363280",
	"현대건설":        "000720",
}

// CompanyCode resolves a company name to its instrument code, or "".
func CompanyCode(name string) string {
	return companyCodes[name]
}
