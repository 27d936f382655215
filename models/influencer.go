// models/influencer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Influencer statuses
const (
	InfluencerStatusActive   = "Ativo"
	InfluencerStatusInactive = "Inativo"
)

// Influencer is a creator profile. Identity and contact are always filled;
// measurement, address, banking, witness and PJ blocks are completed over
// time (self-registration starts partial).
type Influencer struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"nome" bson:"nome"`
	Username         string             `json:"usuario" bson:"usuario"`
	Email            string             `json:"email" bson:"email"`
	Phone            string             `json:"telefone" bson:"telefone"`
	Status           string             `json:"status" bson:"status"`
	RegisteredAt     string             `json:"dataCadastro" bson:"data_cadastro"`
	DriveFolderURL   string             `json:"urlPastaDrive" bson:"url_pasta_drive"`
	Age              int                `json:"idade,omitempty" bson:"idade,omitempty"`
	Avatar           string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
	ShirtSize        string             `json:"camiseta,omitempty" bson:"camiseta,omitempty"`
	PantsSize        string             `json:"calca,omitempty" bson:"calca,omitempty"`
	ShoeSize         string             `json:"sapato,omitempty" bson:"sapato,omitempty"`
	AddressName      string             `json:"enderecoNome,omitempty" bson:"endereco_nome,omitempty"`
	Street           string             `json:"rua,omitempty" bson:"rua,omitempty"`
	Number           string             `json:"numero,omitempty" bson:"numero,omitempty"`
	Complement       string             `json:"complemento,omitempty" bson:"complemento,omitempty"`
	District         string             `json:"bairro,omitempty" bson:"bairro,omitempty"`
	City             string             `json:"cidade,omitempty" bson:"cidade,omitempty"`
	State            string             `json:"estado,omitempty" bson:"estado,omitempty"`
	ZipCode          string             `json:"cep,omitempty" bson:"cep,omitempty"`
	CPF              string             `json:"cpf,omitempty" bson:"cpf,omitempty"`
	RG               string             `json:"rg,omitempty" bson:"rg,omitempty"`
	CNPJ             string             `json:"cnpj,omitempty" bson:"cnpj,omitempty"`
	WitnessName      string             `json:"testemunhaNome,omitempty" bson:"testemunha_nome,omitempty"`
	WitnessEmail     string             `json:"testemunhaEmail,omitempty" bson:"testemunha_email,omitempty"`
	WitnessPhone     string             `json:"testemunhaTelefone,omitempty" bson:"testemunha_telefone,omitempty"`
	WitnessCPF       string             `json:"testemunhaCpf,omitempty" bson:"testemunha_cpf,omitempty"`
	WitnessRG        string             `json:"testemunhaRg,omitempty" bson:"testemunha_rg,omitempty"`
	PJCompanyName    string             `json:"pjRazaoSocial,omitempty" bson:"pj_razao_social,omitempty"`
	PJCNPJ           string             `json:"pjCnpj,omitempty" bson:"pj_cnpj,omitempty"`
	PJFoundedAt      string             `json:"pjDataCriacao,omitempty" bson:"pj_data_criacao,omitempty"`
	PJEmail          string             `json:"pjEmail,omitempty" bson:"pj_email,omitempty"`
	PJAddress        string             `json:"pjEndereco,omitempty" bson:"pj_endereco,omitempty"`
	PJMunicipalReg   string             `json:"pjInscricaoMunicipal,omitempty" bson:"pj_inscricao_municipal,omitempty"`
	PJStateReg       string             `json:"pjInscricaoEstadual,omitempty" bson:"pj_inscricao_estadual,omitempty"`
	BankAccountType  string             `json:"bancoTipo" bson:"banco_tipo"` // "PF" or "PJ"
	BankName         string             `json:"bancoNome,omitempty" bson:"banco_nome,omitempty"`
	BankAgency       string             `json:"bancoAgencia,omitempty" bson:"banco_agencia,omitempty"`
	BankAccount      string             `json:"bancoConta,omitempty" bson:"banco_conta,omitempty"`
	BankPix          string             `json:"bancoPix,omitempty" bson:"banco_pix,omitempty"`
	Notes            string             `json:"observacoes,omitempty" bson:"observacoes,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	DeletedAt        *time.Time         `json:"deletedAt,omitempty" bson:"deleted_at,omitempty"`
}
