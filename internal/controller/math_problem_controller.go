package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanndt/mathpal/internal/dto"
	"github.com/hanndt/mathpal/internal/service"
	"github.com/rs/zerolog/log"
)

type MathProblemController struct {
	problemService    service.ProblemService
	hintService       service.HintService
	submissionService service.SubmissionService
}

func NewMathProblemController(
	ps service.ProblemService,
	hs service.HintService,
	ss service.SubmissionService,
) *MathProblemController {
	return &MathProblemController{
		problemService:    ps,
		hintService:       hs,
		submissionService: ss,
	}
}

// GenerateProblem godoc
// @Summary Generate a new Primary 5 math word problem
// @Description Asks the model for one word problem and starts a new practice session.
// @Tags Math Problems
// @Produce json
// @Success 200 {object} dto.GenerateProblemResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to generate problem"
// @Router /math-problems [post]
func (c *MathProblemController) GenerateProblem(ctx *gin.Context) {
	resp, err := c.problemService.GenerateProblem(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("GenerateProblem: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate problem"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetHint godoc
// @Summary Get a hint for an existing session
// @Description Returns the cached hint if one exists, otherwise asks the model for one. The hint never reveals the numeric answer.
// @Tags Math Problems
// @Accept json
// @Produce json
// @Param request body dto.HintRequest true "Session identifier"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} dto.ErrorResponse "sessionId is required"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate hint"
// @Router /math-problems/hint [post]
func (c *MathProblemController) GetHint(ctx *gin.Context) {
	var req dto.HintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "sessionId is required"})
		return
	}

	resp, err := c.hintService.GetHint(ctx.Request.Context(), req.SessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("GetHint: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate hint"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit a numeric answer for a session
// @Description Grades the answer against the stored correct answer and returns AI feedback. Resubmission is allowed and appends a new attempt.
// @Tags Math Problems
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Session identifier and numeric answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "sessionId and user_answer are required"
// @Failure 500 {object} dto.ErrorResponse "Submission failed"
// @Router /math-problems/submit [post]
func (c *MathProblemController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "sessionId and user_answer are required"})
		return
	}

	resp, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), req.SessionID, *req.UserAnswer)
	if err != nil {
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("SubmitAnswer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Submission failed"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSubmissions godoc
// @Summary List previous attempts for a session
// @Description Returns all submissions recorded against a session, newest first.
// @Tags Math Problems
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list submissions"
// @Router /math-problems/{session_id}/submissions [get]
func (c *MathProblemController) GetSubmissions(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	resp, err := c.submissionService.GetSubmissions(sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("GetSubmissions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list submissions"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
