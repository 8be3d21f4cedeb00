package dbmodels

type MediaFile struct {
	BaseModel
	OwnerID     string   `gorm:"type:varchar(36);index"`
	Kind        FileType `gorm:"type:varchar(50)"`
	Name        string
	ObjectKey   string `gorm:"type:varchar(512)"`
	ContentType string `gorm:"type:varchar(255)"`
	Size        int64
	URL         string `gorm:"type:varchar(1024)"`
}

type FileType string

const (
	BrandingLogo    FileType = "branding_logo"
	BrandingBanner  FileType = "branding_banner"
	CandidateResume FileType = "candidate_resume"
)

var fileTypeAllowedContent = map[FileType][]string{
	BrandingLogo:    {"image/png", "image/jpeg", "image/svg+xml", "image/webp"},
	BrandingBanner:  {"image/png", "image/jpeg", "image/webp"},
	CandidateResume: {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
}

func (f FileType) IsValid() bool {
	_, ok := fileTypeAllowedContent[f]
	return ok
}

func (f FileType) IsAllowedContent(contentType string) bool {
	for _, allowed := range fileTypeAllowedContent[f] {
		if allowed == contentType {
			return true
		}
	}
	return false
}

type UploadFileInfo struct {
	OwnerID     string
	FileName    string
	FileType    FileType
	ContentType string
	Size        int64
}
