package request

type CreatePetRequest struct {
	Name         string `json:"name" binding:"required"`
	Breed        string `json:"breed" binding:"required"`
	Size         string `json:"size" binding:"required,oneof=small medium large"`
	Temperament  string `json:"temperament"`
	SpecialNeeds string `json:"specialNeeds"`
	MedicalInfo  string `json:"medicalInfo"`
}
