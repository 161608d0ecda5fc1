package handlers

import (
	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/services"
)

func NewAnalystHandler(s *services.AnalystService) *CRUDHandler[dto.CreateAnalystRequest, dto.UpdateAnalystRequest, models.Analyst] {
	return NewCRUDHandler("analyst", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewResourceHandler(s *services.ResourceService) *CRUDHandler[dto.CreateResourceRequest, dto.UpdateResourceRequest, models.Resource] {
	return NewCRUDHandler("resource", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewDictionaryHandler(s *services.DictionaryService) *CRUDHandler[dto.CreateDictionaryRequest, dto.UpdateDictionaryRequest, models.Dictionary] {
	return NewCRUDHandler("dictionary", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewDictTableHandler(s *services.DictTableService) *CRUDHandler[dto.CreateDictTableRequest, dto.UpdateDictTableRequest, models.DictTable] {
	return NewCRUDHandler("dict_table", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewVariableHandler(s *services.VariableService) *CRUDHandler[dto.CreateVariableRequest, dto.UpdateVariableRequest, models.Variable] {
	return NewCRUDHandler("variable", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewValueSetHandler(s *services.ValueSetService) *CRUDHandler[dto.CreateValueSetRequest, dto.UpdateValueSetRequest, models.ValueSet] {
	return NewCRUDHandler("value_set", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewValueSetCodeHandler(s *services.ValueSetCodeService) *CRUDHandler[dto.CreateValueSetCodeRequest, dto.UpdateValueSetCodeRequest, models.ValueSetCode] {
	return NewCRUDHandler("value_set_code", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewMappingHandler(s *services.MappingService) *CRUDHandler[dto.CreateMappingRequest, dto.UpdateMappingRequest, models.Mapping] {
	return NewCRUDHandler("mapping", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}

func NewUserHandler(s *services.UserService) *CRUDHandler[dto.CreateUserRequest, dto.UpdateUserRequest, models.User] {
	return NewCRUDHandler("user", s.FindAll, s.FindByID, s.Create, s.Update, s.Delete)
}
