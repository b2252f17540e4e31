package models

// Province is a bilingual lookup entry. Provinces are static reference data,
// not rows the marketplace mutates, so they live in code rather than in a
// table.
type Province struct {
	Code   string `json:"code"`
	NameTH string `json:"name_th"`
	NameEN string `json:"name_en"`
}

// Provinces lists the regions campsites can be listed in.
var Provinces = []Province{
	{Code: "bangkok", NameTH: "กรุงเทพมหานคร", NameEN: "Bangkok"},
	{Code: "chiang-mai", NameTH: "เชียงใหม่", NameEN: "Chiang Mai"},
	{Code: "chiang-rai", NameTH: "เชียงราย", NameEN: "Chiang Rai"},
	{Code: "kanchanaburi", NameTH: "กาญจนบุรี", NameEN: "Kanchanaburi"},
	{Code: "khao-yai", NameTH: "เขาใหญ่", NameEN: "Khao Yai"},
	{Code: "krabi", NameTH: "กระบี่", NameEN: "Krabi"},
	{Code: "loei", NameTH: "เลย", NameEN: "Loei"},
	{Code: "mae-hong-son", NameTH: "แม่ฮ่องสอน", NameEN: "Mae Hong Son"},
	{Code: "nakhon-ratchasima", NameTH: "นครราชสีมา", NameEN: "Nakhon Ratchasima"},
	{Code: "nan", NameTH: "น่าน", NameEN: "Nan"},
	{Code: "phetchabun", NameTH: "เพชรบูรณ์", NameEN: "Phetchabun"},
	{Code: "prachuap-khiri-khan", NameTH: "ประจวบคีรีขันธ์", NameEN: "Prachuap Khiri Khan"},
	{Code: "ratchaburi", NameTH: "ราชบุรี", NameEN: "Ratchaburi"},
	{Code: "suphan-buri", NameTH: "สุพรรณบุรี", NameEN: "Suphan Buri"},
	{Code: "tak", NameTH: "ตาก", NameEN: "Tak"},
}

// IsValidProvince reports whether code is a known province code.
func IsValidProvince(code string) bool {
	for _, p := range Provinces {
		if p.Code == code {
			return true
		}
	}
	return false
}
