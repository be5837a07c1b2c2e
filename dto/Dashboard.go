package dto

type KindStats struct {
	Total  int64 `json:"total"`
	Public int64 `json:"public"`
}

// DashboardStats summarises an owner's content.
type DashboardStats struct {
	Certificates           KindStats `json:"certificates"`
	Skills                 KindStats `json:"skills"`
	Projects               KindStats `json:"projects"`
	TopCertificateCategory string    `json:"topCertificateCategory"`
	TopSkillCategory       string    `json:"topSkillCategory"`
}
