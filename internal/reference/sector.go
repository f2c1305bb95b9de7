package reference

import "strings"

// sectorKeywords maps a sector label to the company-name keywords that
// imply it. Evaluated in the listed order; the first hit wins.
var sectorKeywords = []struct {
	Sector   string
	Keywords []string
}{
	{"반도체", []string{"반도체", "하이닉스", "삼성전자", "SK하이닉스", "메모리", "칩", "실리콘", "파운드리"}},
	{"2차전지", []string{"배터리", "에너지솔루션", "SDI", "에코프로", "LG에너지", "천보", "엘앤에프", "포스코퓨처엠"}},
	{"바이오/제약", []string{"바이오", "제약", "헬스", "메디", "셀트리온", "약품", "사이언스", "젠", "텍", "휴젤", "파마"}},
	{"자동차/부품", []string{"자동차", "모비스", "현대차", "기아", "위아", "오토", "타이어", "모빌리티"}},
	{"금융", []string{"금융", "증권", "보험", "은행", "지주", "카드", "캐피탈", "투자"}},
	{"IT/소프트웨어", []string{"소프트", "게임즈", "엔터", "네이버", "카카오", "엔씨", "크래프톤", "넥슨", "컴퓨터"}},
	{"화학", []string{"화학", "케미칼", "석유", "정밀화학", "소재"}},
	{"철강/금속", []string{"철강", "스틸", "아연", "금속", "포스코"}},
	{"건설", []string{"건설", "건축", "시멘트", "HDC"}},
	{"조선/해양", []string{"조선", "해양", "해운", "HMM", "한진"}},
	{"전자/전기", []string{"전자", "전기", "LG전자", "삼성전기", "이노텍"}},
	{"통신", []string{"통신", "텔레콤", "KT", "SKT", "LG유플"}},
	{"유통/소비재", []string{"마트", "쇼핑", "리테일", "롯데", "신세계", "이마트"}},
	{"식품/음료", []string{"식품", "음료", "푸드", "농심", "오리온", "CJ제일", "삼양"}},
	{"에너지/유틸리티", []string{"에너지", "전력", "가스", "한전", "S-Oil"}},
	{"항공/우주", []string{"항공", "우주", "에어로", "한국항공"}},
	{"엔터테인먼트", []string{"엔터", "JYP", "SM", "하이브", "YG"}},
	{"디스플레이", []string{"디스플레이", "LCD", "OLED"}},
	{"기계/장비", []string{"기계", "장비", "로봇", "시스템"}},
}

// SectorOther is the fallback sector for names matching no keyword.
const SectorOther = "기타"

// SectorFromName classifies a company name into a sector by keyword,
// case-insensitively.
func SectorFromName(name string) string {
	lower := strings.ToLower(name)
	for _, sk := range sectorKeywords {
		for _, kw := range sk.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return sk.Sector
			}
		}
	}
	return SectorOther
}
