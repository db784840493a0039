package v1

import (
	"net/http"

	"github.com/budgetplanner/backend/internal/httputil"
	"github.com/budgetplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSchemaRoutes registers the routes for the category schema
// with the RouterGroup that is passed.
func RegisterSchemaRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSchema)
		r.GET("", GetSchema)
	}

	{
		r.OPTIONS("/categories", OptionsSchemaCategories)
		r.POST("/categories", CreateCategory)
	}

	{
		r.OPTIONS("/subcategories", OptionsSchemaSubcategories)
		r.POST("/subcategories", CreateSubcategory)
	}

	{
		r.OPTIONS("/items", OptionsSchemaItems)
		r.POST("/items", CreateItem)
		r.DELETE("/items", DeleteItem)
	}
}

type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Fixkosten"`
	Kind string `json:"kind" example:"fixed" default:""` // Optional, defaults to name-based classification
}

type SubcategoryEditable struct {
	Category string `json:"category" binding:"required" example:"Fixkosten"`
	Name     string `json:"name" binding:"required" example:"Wohnen"`
}

type ItemEditable struct {
	Category    string `json:"category" binding:"required" example:"Fixkosten"`
	Subcategory string `json:"subcategory" binding:"required" example:"Wohnen"`
	Name        string `json:"name" binding:"required" example:"Miete"`
}

type QueryItem struct {
	Category    string `form:"category" binding:"required" example:"Fixkosten"`
	Subcategory string `form:"subcategory" binding:"required" example:"Wohnen"`
	Item        string `form:"item" binding:"required" example:"Miete"`
}

type Structure struct {
	Structure models.Schema `json:"structure"`
	Kinds     models.Kinds  `json:"kinds"` // Effective kind for every main category
}

type SchemaResponse struct {
	Data  *Structure `json:"data"`
	Error *string    `json:"error" example:"the specified resource does not exist"`
}

func newStructure(settings models.Settings) Structure {
	return Structure{
		Structure: settings.Structure,
		Kinds:     settings.CategoryKinds.ForSchema(settings.Structure),
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schema
// @Success		204
// @Router			/v1/schema [options]
func OptionsSchema(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schema
// @Success		204
// @Router			/v1/schema/categories [options]
func OptionsSchemaCategories(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schema
// @Success		204
// @Router			/v1/schema/subcategories [options]
func OptionsSchemaSubcategories(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schema
// @Success		204
// @Router			/v1/schema/items [options]
func OptionsSchemaItems(c *gin.Context) {
	httputil.OptionsPostDelete(c)
}

// @Summary		Get schema
// @Description	Returns the category structure and the effective kind of every main category
// @Tags			Schema
// @Produce		json
// @Success		200	{object}	SchemaResponse
// @Failure		500	{object}	SchemaResponse
// @Router			/v1/schema [get]
func GetSchema(c *gin.Context) {
	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	data := newStructure(settings)
	c.JSON(http.StatusOK, SchemaResponse{Data: &data})
}

// @Summary		Create category
// @Description	Adds a main category to the schema, optionally with an explicit kind
// @Tags			Schema
// @Accept			json
// @Produce		json
// @Success		201			{object}	SchemaResponse
// @Failure		400			{object}	SchemaResponse
// @Failure		500			{object}	SchemaResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/schema/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	var kind models.CategoryKind
	if editable.Kind != "" {
		kind, err = models.ParseCategoryKind(editable.Kind)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), SchemaResponse{
				Error: &e,
			})
			return
		}
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	if _, ok := settings.Structure[editable.Name]; ok {
		e := errCategoryExists.Error()
		c.JSON(http.StatusBadRequest, SchemaResponse{
			Error: &e,
		})
		return
	}

	settings.Structure.AddCategory(editable.Name)
	if kind != "" {
		if settings.CategoryKinds == nil {
			settings.CategoryKinds = models.Kinds{}
		}
		settings.CategoryKinds[editable.Name] = kind
	}

	err = store.SaveSettings(settings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	data := newStructure(settings)
	c.JSON(http.StatusCreated, SchemaResponse{Data: &data})
}

// @Summary		Create subcategory
// @Description	Adds a subcategory to an existing main category
// @Tags			Schema
// @Accept			json
// @Produce		json
// @Success		201				{object}	SchemaResponse
// @Failure		400				{object}	SchemaResponse
// @Failure		404				{object}	SchemaResponse
// @Failure		500				{object}	SchemaResponse
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/v1/schema/subcategories [post]
func CreateSubcategory(c *gin.Context) {
	var editable SubcategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	if _, ok := settings.Structure[editable.Category]; !ok {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, SchemaResponse{
			Error: &e,
		})
		return
	}

	settings.Structure.AddSubcategory(editable.Category, editable.Name)

	err = store.SaveSettings(settings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	data := newStructure(settings)
	c.JSON(http.StatusCreated, SchemaResponse{Data: &data})
}

// @Summary		Create item
// @Description	Adds an item to an existing subcategory
// @Tags			Schema
// @Accept			json
// @Produce		json
// @Success		201		{object}	SchemaResponse
// @Failure		400		{object}	SchemaResponse
// @Failure		404		{object}	SchemaResponse
// @Failure		500		{object}	SchemaResponse
// @Param			item	body		ItemEditable	true	"Item"
// @Router			/v1/schema/items [post]
func CreateItem(c *gin.Context) {
	var editable ItemEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	subcategories, ok := settings.Structure[editable.Category]
	if !ok {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, SchemaResponse{
			Error: &e,
		})
		return
	}

	if _, ok := subcategories[editable.Subcategory]; !ok {
		e := models.ErrResourceNotFound.Error()
		c.JSON(http.StatusNotFound, SchemaResponse{
			Error: &e,
		})
		return
	}

	settings.Structure.AddItem(editable.Category, editable.Subcategory, editable.Name)

	err = store.SaveSettings(settings)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SchemaResponse{
			Error: &e,
		})
		return
	}

	data := newStructure(settings)
	c.JSON(http.StatusCreated, SchemaResponse{Data: &data})
}

// @Summary		Delete item
// @Description	Removes an item from the schema. Empty subcategories and categories are pruned.
// @Tags			Schema
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	query		string	true	"Main category of the item"
// @Param			subcategory	query		string	true	"Subcategory of the item"
// @Param			item		query		string	true	"Name of the item"
// @Router			/v1/schema/items [delete]
func DeleteItem(c *gin.Context) {
	var query QueryItem
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	settings, err := store.LoadSettings()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !settings.Structure.Contains(query.Category, query.Subcategory, query.Item) {
		c.JSON(http.StatusNotFound, httpError{
			Error: models.ErrResourceNotFound.Error(),
		})
		return
	}

	settings.Structure.RemoveItem(query.Category, query.Subcategory, query.Item)

	err = store.SaveSettings(settings)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
