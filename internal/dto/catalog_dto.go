package dto

type CreateAnalystRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateAnalystRequest struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

type CreateResourceRequest struct {
	Code            string `json:"code" validate:"required,max=50"`
	Name            string `json:"name" validate:"required,max=255"`
	Description     string `json:"description"`
	Institution     string `json:"institution" validate:"omitempty,max=255"`
	ProjectPhase    string `json:"project_phase" validate:"omitempty,max=100"`
	RetentionPeriod string `json:"retention_period" validate:"omitempty,max=100"`
	AnalystID       *uint  `json:"analyst_id"`
}

type UpdateResourceRequest struct {
	Code            *string `json:"code" validate:"omitempty,max=50"`
	Name            *string `json:"name" validate:"omitempty,max=255"`
	Description     *string `json:"description"`
	Institution     *string `json:"institution" validate:"omitempty,max=255"`
	ProjectPhase    *string `json:"project_phase" validate:"omitempty,max=100"`
	RetentionPeriod *string `json:"retention_period" validate:"omitempty,max=100"`
	AnalystID       *uint   `json:"analyst_id"`
}

type CreateDictionaryRequest struct {
	ResourceID     uint   `json:"resource_id" validate:"required"`
	CurrentVersion string `json:"current_version" validate:"omitempty,max=50"`
	ToBePublished  bool   `json:"to_be_published"`
}

type UpdateDictionaryRequest struct {
	ResourceID     *uint   `json:"resource_id"`
	CurrentVersion *string `json:"current_version" validate:"omitempty,max=50"`
	ToBePublished  *bool   `json:"to_be_published"`
}

type CreateDictTableRequest struct {
	DictionaryID uint   `json:"dictionary_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=255"`
	EntityType   string `json:"entity_type" validate:"omitempty,oneof=subject event record"`
	Domain       string `json:"domain" validate:"omitempty,oneof=clinical laboratory administrative survey"`
	LabelCs      string `json:"label_cs" validate:"omitempty,max=255"`
	LabelEn      string `json:"label_en" validate:"omitempty,max=255"`
}

type UpdateDictTableRequest struct {
	DictionaryID *uint   `json:"dictionary_id"`
	Name         *string `json:"name" validate:"omitempty,max=255"`
	EntityType   *string `json:"entity_type" validate:"omitempty,oneof=subject event record"`
	Domain       *string `json:"domain" validate:"omitempty,oneof=clinical laboratory administrative survey"`
	LabelCs      *string `json:"label_cs" validate:"omitempty,max=255"`
	LabelEn      *string `json:"label_en" validate:"omitempty,max=255"`
}

type CreateVariableRequest struct {
	TableID         uint   `json:"table_id" validate:"required"`
	Path            string `json:"path" validate:"required,max=500"`
	LabelCs         string `json:"label_cs" validate:"omitempty,max=255"`
	LabelEn         string `json:"label_en" validate:"omitempty,max=255"`
	ValueType       string `json:"value_type" validate:"omitempty,oneof=string integer decimal boolean date datetime code"`
	VariableStatus  string `json:"variable_status" validate:"omitempty,oneof=draft active deprecated"`
	RollingVersion  string `json:"rolling_version" validate:"omitempty,oneof=yes no partial"`
	ValueSetID      *uint  `json:"value_set_id"`
	FromVariableIDs []uint `json:"from_variable_ids"`
}

type UpdateVariableRequest struct {
	TableID         *uint    `json:"table_id"`
	Path            *string  `json:"path" validate:"omitempty,max=500"`
	LabelCs         *string  `json:"label_cs" validate:"omitempty,max=255"`
	LabelEn         *string  `json:"label_en" validate:"omitempty,max=255"`
	ValueType       *string  `json:"value_type" validate:"omitempty,oneof=string integer decimal boolean date datetime code"`
	VariableStatus  *string  `json:"variable_status" validate:"omitempty,oneof=draft active deprecated"`
	RollingVersion  *string  `json:"rolling_version" validate:"omitempty,oneof=yes no partial"`
	ValueSetID      *uint    `json:"value_set_id"`
	FromVariableIDs *[]uint  `json:"from_variable_ids"`
}

type CreateValueSetRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,max=500"`
}

type UpdateValueSetRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	URL         *string `json:"url" validate:"omitempty,max=500"`
}

type CreateValueSetCodeRequest struct {
	ValueSetID uint   `json:"value_set_id" validate:"required"`
	Code       string `json:"code" validate:"required,max=100"`
	LabelCs    string `json:"label_cs" validate:"omitempty,max=255"`
	LabelEn    string `json:"label_en" validate:"omitempty,max=255"`
}

type UpdateValueSetCodeRequest struct {
	ValueSetID *uint   `json:"value_set_id"`
	Code       *string `json:"code" validate:"omitempty,max=100"`
	LabelCs    *string `json:"label_cs" validate:"omitempty,max=255"`
	LabelEn    *string `json:"label_en" validate:"omitempty,max=255"`
}

type CreateMappingRequest struct {
	ValueSetCodeID uint   `json:"value_set_code_id" validate:"required"`
	OriginalValue  string `json:"original_value" validate:"required,max=255"`
	Comment        string `json:"comment"`
}

type UpdateMappingRequest struct {
	ValueSetCodeID *uint   `json:"value_set_code_id"`
	OriginalValue  *string `json:"original_value" validate:"omitempty,max=255"`
	Comment        *string `json:"comment"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=255"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
}
