package app

import (
	"petadot/inout"
	"petadot/model/app_model"
	"petadot/pkg/response"
	"petadot/services/app_service"

	"github.com/gin-gonic/gin"
)

var petService = &app_service.PetService{}

// CreateAdoptionPet 待领养宠物登记
func CreateAdoptionPet(c *gin.Context) {
	createPet(c, app_model.CategoryAdoption)
}

// CreateLostPet 走失宠物登记
func CreateLostPet(c *gin.Context) {
	createPet(c, app_model.CategoryLost)
}

// CreateFoundPet 被发现宠物登记
func CreateFoundPet(c *gin.Context) {
	createPet(c, app_model.CategoryFound)
}

func createPet(c *gin.Context, category string) {
	var req inout.CreatePetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	result, err := petService.Create(c.GetUint("uid"), category, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, inout.SubmissionRes{
		ID:     result.ID,
		Slug:   result.Slug,
		Status: string(result.Status),
	})
}

// GetPetList 公开宠物列表
func GetPetList(c *gin.Context) {
	var req inout.PetListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := petService.List(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}

// GetPetDetail 按slug获取宠物详情
func GetPetDetail(c *gin.Context) {
	pet, err := petService.Detail(c.Param("slug"), c.GetUint("uid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, pet)
}

// GetMyPets 当前用户的全部登记
func GetMyPets(c *gin.Context) {
	var req inout.PetListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, err.Error())
		return
	}

	data, err := petService.MyList(c.GetUint("uid"), req.Page, req.PageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, data)
}
