package model

// Theme is the visual theme of a public portfolio.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeModern  Theme = "modern"
	ThemeMinimal Theme = "minimal"
	ThemeDark    Theme = "dark"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeDefault, ThemeModern, ThemeMinimal, ThemeDark:
		return true
	}
	return false
}

// Section is one independently toggleable block of a public portfolio.
type Section string

const (
	SectionCertificates Section = "certificates"
	SectionSkills       Section = "skills"
	SectionProjects     Section = "projects"
)

// Sections returns every section in the default rendering order.
func Sections() []Section {
	return []Section{SectionCertificates, SectionSkills, SectionProjects}
}

func (s Section) IsValid() bool {
	switch s {
	case SectionCertificates, SectionSkills, SectionProjects:
		return true
	}
	return false
}

type CertificateCategory string

const (
	CertCategoryProgramming       CertificateCategory = "Programming"
	CertCategoryDesign            CertificateCategory = "Design"
	CertCategoryProjectManagement CertificateCategory = "Project Management"
	CertCategorySoftSkills        CertificateCategory = "Soft Skills"
	CertCategoryOther             CertificateCategory = "Other"
)

func (c CertificateCategory) IsValid() bool {
	switch c {
	case CertCategoryProgramming, CertCategoryDesign, CertCategoryProjectManagement,
		CertCategorySoftSkills, CertCategoryOther:
		return true
	}
	return false
}

type SkillCategory string

const (
	SkillCategoryFrontend      SkillCategory = "Frontend Development"
	SkillCategoryBackend       SkillCategory = "Backend Development"
	SkillCategoryFullstack     SkillCategory = "Fullstack Development"
	SkillCategoryMobile        SkillCategory = "Mobile Development"
	SkillCategoryDatabase      SkillCategory = "Database Management"
	SkillCategoryDevOps        SkillCategory = "DevOps"
	SkillCategoryCloud         SkillCategory = "Cloud Computing"
	SkillCategoryDataScience   SkillCategory = "Data Science & AI"
	SkillCategoryML            SkillCategory = "Machine Learning"
	SkillCategoryProjectMgmt   SkillCategory = "Project Management"
	SkillCategoryUIUX          SkillCategory = "UI/UX Design"
	SkillCategoryGraphicDesign SkillCategory = "Graphic Design"
	SkillCategoryTesting       SkillCategory = "Testing & QA"
	SkillCategorySoftSkills    SkillCategory = "Soft Skills"
	SkillCategoryLanguages     SkillCategory = "Languages"
	SkillCategoryOther         SkillCategory = "Other"
)

func (c SkillCategory) IsValid() bool {
	switch c {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryFullstack, SkillCategoryMobile,
		SkillCategoryDatabase, SkillCategoryDevOps, SkillCategoryCloud, SkillCategoryDataScience,
		SkillCategoryML, SkillCategoryProjectMgmt, SkillCategoryUIUX, SkillCategoryGraphicDesign,
		SkillCategoryTesting, SkillCategorySoftSkills, SkillCategoryLanguages, SkillCategoryOther:
		return true
	}
	return false
}

type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

func (l SkillLevel) IsValid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}
