package controllers

import (
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DirectoryController struct {
	Log              *zap.Logger
	DirectoryUsecase contracts.DirectoryUsecase
}

func NewDirectoryController(logger *zap.Logger, directoryUsecase contracts.DirectoryUsecase) *DirectoryController {
	return &DirectoryController{
		Log:              logger,
		DirectoryUsecase: directoryUsecase,
	}
}

func (ctrl *DirectoryController) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	specialties, err := ctrl.DirectoryUsecase.ListSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecialtiesSuccessMessage, specialties)
}

func (ctrl *DirectoryController) GetDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	specialty := r.URL.Query().Get("specialty")
	doctors, err := ctrl.DirectoryUsecase.ListDoctors(ctx, specialty)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}
