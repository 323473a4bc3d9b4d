package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	helper "github.com/bofo90/RoadOptimization/pkg/http/router/routerhelper"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type networkAPI struct {
	networkService NetworkService
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(networkService NetworkService, log *zap.Logger) *networkAPI {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &networkAPI{
		networkService: networkService,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *networkAPI) Routes(group *helper.RouteGroup) {
	group.POST("/computeNetwork", api.computeNetwork)
	group.GET("/generateNetwork", api.generateNetwork)
}

// computeNetwork
//
//	@Summary		connect the given houses, malls and city center with a road network.
//	@Description	delaunay triangulation, minimum spanning tree, city center graft and dead-end mall pruning.
//	@Tags			network
//	@Param			body	body	computeNetworkRequest	true	"points and alpha"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/computeNetwork [post]
//	@Success		200	{object}	networkResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		422	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *networkAPI) computeNetwork(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request computeNetworkRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.validate.Struct(request); err != nil {
		api.validationErrorResponse(w, r, err)
		return
	}

	network, err := api.networkService.ComputeNetwork(toPoints(request.Houses), toPoints(request.Malls),
		request.CityCenter.toPoint(), request.Alpha)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNetworkResponse(network)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// generateNetwork
//
//	@Summary		generate random points with a seed and connect them.
//	@Tags			network
//	@Param			houses	query	int		true	"number of houses"
//	@Param			malls	query	int		true	"number of malls"
//	@Param			seed	query	int		false	"random seed"
//	@Param			alpha	query	number	true	"local road weight, in (0,1)"
//	@Produce		application/json
//	@Router			/generateNetwork [get]
//	@Success		200	{object}	networkResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *networkAPI) generateNetwork(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request generateNetworkRequest
		err     error
	)

	query := r.URL.Query()

	request.Houses, err = strconv.Atoi(query.Get("houses"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("houses is required and must be a valid int"))
		return
	}
	request.Malls, err = strconv.Atoi(query.Get("malls"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("malls is required and must be a valid int"))
		return
	}
	if s := query.Get("seed"); s != "" {
		request.Seed, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("seed must be a valid unsigned int"))
			return
		}
	}
	request.Alpha, err = util.StringToFloat64(query.Get("alpha"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("alpha is required and must be a valid float"))
		return
	}

	if err := api.validate.Struct(request); err != nil {
		api.validationErrorResponse(w, r, err)
		return
	}

	network, err := api.networkService.GenerateNetwork(request.Houses, request.Malls, request.Seed, request.Alpha)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNetworkResponse(network)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
