// models/campaign.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign statuses. FINALIZADA removes the campaign from active views but
// keeps it in storage.
const (
	CampaignStatusPlanning  = "PLANEJAMENTO"
	CampaignStatusExecution = "EM ANDAMENTO"
	CampaignStatusCompleted = "FINALIZADA"
)

// Completion sentinels per sub-document. The deadline aggregator suppresses
// an alert once the paired status reaches its sentinel.
const (
	ContractStatusPending  = "Pendente"
	ContractStatusSigned   = "Assinado"
	ProductStatusNotSent   = "Não Enviado"
	ProductStatusDelivered = "Entregue"
	ScriptStatusNotStarted = "Não Iniciado"
	ScriptStatusApproved   = "Aprovado"
	ContentStatusPosted    = "Postado"
	PostStatusNotPosted    = "Não Postado"
	PostStatusPublished    = "Publicado"
	MetricsStatusPending   = "Pendente"
	MetricsStatusSent      = "Enviado ao Cliente"
	InvoiceStatusPending   = "Pendente"
	InvoiceStatusIssued    = "Emitida"
	PayoutStatusPending    = "Pendente"
	PayoutStatusPaid       = "Pago"
)

// DateTBD is the placeholder operators type while a date is still unknown.
const DateTBD = "A definir"

// Contract tracks the signature sub-stage.
type Contract struct {
	Required   string `json:"precisaContrato" bson:"precisaContrato"` // "Sim" / "Não"
	Status     string `json:"statusContrato" bson:"statusContrato"`
	DueDate    string `json:"contratoDataPrevista" bson:"contratoDataPrevista"`
	SignedDate string `json:"contratoDataReal" bson:"contratoDataReal"`
	Link       string `json:"contratoLink" bson:"contratoLink"`
	Notes      string `json:"contratoObservacoes" bson:"contratoObservacoes"`
}

// Product tracks shipping of physical goods to the creator.
type Product struct {
	Required     string `json:"precisaProduto" bson:"precisaProduto"`
	Name         string `json:"nomeProduto" bson:"nomeProduto"`
	Quantity     int    `json:"produtoQuantidade" bson:"produtoQuantidade"`
	Status       string `json:"produtoStatus" bson:"produtoStatus"`
	ShippingAddr string `json:"produtoEnderecoEnvio" bson:"produtoEnderecoEnvio"`
	ShippingDate string `json:"produtoDataEnvio" bson:"produtoDataEnvio"`
	TrackingCode string `json:"produtoCodigoRastreio" bson:"produtoCodigoRastreio"`
	TrackingLink string `json:"produtoLinkRastreamento" bson:"produtoLinkRastreamento"`
}

// Script tracks scripting and client approval.
type Script struct {
	Required       string `json:"precisaRoteiro" bson:"precisaRoteiro"`
	Type           string `json:"roteiroTipo" bson:"roteiroTipo"`
	Versions       int    `json:"numeroVersoes" bson:"numeroVersoes"`
	Status         string `json:"roteiroStatus" bson:"roteiroStatus"`
	DueDate        string `json:"roteiroDataPrevista" bson:"roteiroDataPrevista"`
	DeliveredDate  string `json:"roteiroDataReal" bson:"roteiroDataReal"`
	ApprovalDate   string `json:"roteiroDataAprovacao" bson:"roteiroDataAprovacao"`
	DocsFolder     string `json:"roteiroPastaGoogleDocs" bson:"roteiroPastaGoogleDocs"`
	ClientFeedback string `json:"roteiroFeedbackCliente" bson:"roteiroFeedbackCliente"`
}

// ContentItem is one planned deliverable inside the content sub-document.
type ContentItem struct {
	ID       string `json:"id" bson:"id"`
	Type     string `json:"type" bson:"type"`
	Platform string `json:"platform" bson:"platform"`
	Status   string `json:"status" bson:"status"`
	PostDate string `json:"postDate" bson:"postDate"`
	Links    string `json:"links,omitempty" bson:"links,omitempty"`
}

type Content struct {
	Quantity int           `json:"quantidadeConteudos" bson:"quantidadeConteudos"`
	Folder   string        `json:"linkPastaConteudo" bson:"linkPastaConteudo"`
	Items    []ContentItem `json:"items" bson:"items"`
}

// Posting is the legacy single-post record kept for campaigns created before
// per-item content tracking existed.
type Posting struct {
	Status     string `json:"postagemStatus" bson:"postagemStatus"`
	Network    string `json:"postagemRedeSocial" bson:"postagemRedeSocial"`
	Type       string `json:"postagemTipo" bson:"postagemTipo"`
	Date       string `json:"postagemData" bson:"postagemData"`
	ActualDate string `json:"dataRealPostagem" bson:"dataRealPostagem"`
	Time       string `json:"postagemHorario" bson:"postagemHorario"`
	Link       string `json:"postagemLink" bson:"postagemLink"`
}

type Metrics struct {
	DueDate string `json:"metricasDataPrevista" bson:"metricasDataPrevista"`
	Status  string `json:"metricasStatus" bson:"metricasStatus"`
	Folder  string `json:"linkPastaMetricas" bson:"linkPastaMetricas"`
}

// Invoice tracks issuance of the fiscal note and the client payment due date.
type Invoice struct {
	Status         string  `json:"nfStatus" bson:"nfStatus"`
	Type           string  `json:"nfTipo" bson:"nfTipo"`
	Number         string  `json:"nfNumero" bson:"nfNumero"`
	IssuerCNPJ     string  `json:"nfCnpjEmissor" bson:"nfCnpjEmissor"`
	IssueDate      string  `json:"nfDataEmissao" bson:"nfDataEmissao"`
	PaymentDueDate string  `json:"nfDataPrevistaPagamento" bson:"nfDataPrevistaPagamento"`
	Value          float64 `json:"nfValor" bson:"nfValor"`
	PDFLink        string  `json:"nfLinkPdf" bson:"nfLinkPdf"`
}

// Payout tracks the transfer of the influencer's cut.
type Payout struct {
	TotalValue    float64 `json:"valorTotal" bson:"valorTotal"`
	InfluencerCut float64 `json:"repasseInfluenciador" bson:"repasseInfluenciador"`
	AgencyFee     float64 `json:"repasseTaxaLitte" bson:"repasseTaxaLitte"`
	Status        string  `json:"repasseStatus" bson:"repasseStatus"`
	Date          string  `json:"repasseData" bson:"repasseData"`
	ReceiptLink   string  `json:"repasseLinkComprovante" bson:"repasseLinkComprovante"`
}

// Financial is the campaign's money block. Split percentages are never stored
// here; they come from the process-wide split rules.
type Financial struct {
	GrossValue          float64 `json:"grossValue" bson:"grossValue"`
	InfluencerCut       float64 `json:"influencerCut" bson:"influencerCut"`
	AgencyTax           float64 `json:"litteTax" bson:"litteTax"`
	PartnerSplit        float64 `json:"partnerSplit" bson:"partnerSplit"`
	WithdrawalStatus    string  `json:"withdrawalStatus" bson:"withdrawalStatus"` // "PENDENTE", "SOLICITADO", "PAGO"
	ExpectedPaymentDate string  `json:"expectedPaymentDate" bson:"expectedPaymentDate"`
	ClientPayStatus     string  `json:"statusPagCliente" bson:"statusPagCliente"` // "Pendente", "Pago"
	PayoutStatus        string  `json:"statusRepasse" bson:"statusRepasse"`       // "Pendente", "Processando", "Pago"
	InvoiceStatus       string  `json:"statusNF" bson:"statusNF"`                 // "Pendente", "Emitida", "Enviada"
	CreatedAt           string  `json:"dataCriacao" bson:"dataCriacao"`
	UpdatedAt           string  `json:"ultimaAtualizacao" bson:"ultimaAtualizacao"`
}

type ChecklistItem struct {
	ID          string `json:"id" bson:"id"`
	Module      string `json:"module" bson:"module"`
	Task        string `json:"task" bson:"task"`
	Done        bool   `json:"done" bson:"done"`
	CompletedAt string `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// Campaign is a contracted engagement tracked through delivery sub-stages.
type Campaign struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string               `json:"title" bson:"title"`
	Brand           string               `json:"brand" bson:"brand"`
	InfluencerIDs   []primitive.ObjectID `json:"influencerIds" bson:"influencer_ids"`
	Status          string               `json:"status" bson:"status"`
	StartDate       string               `json:"startDate" bson:"start_date"`
	EndDate         string               `json:"endDate" bson:"end_date"`
	Briefing        string               `json:"briefing" bson:"briefing"`
	DriveLink       string               `json:"driveLink,omitempty" bson:"drive_link,omitempty"`
	InternalNotes   string               `json:"internalNotes,omitempty" bson:"internal_notes,omitempty"`
	InfluencerNotes string               `json:"influencerNotes,omitempty" bson:"influencer_notes,omitempty"`
	Contract        Contract             `json:"contrato" bson:"contrato"`
	Product         Product              `json:"produto" bson:"produto"`
	Script          Script               `json:"roteiro" bson:"roteiro"`
	Content         Content              `json:"conteudo" bson:"conteudo"`
	Posting         Posting              `json:"postagem" bson:"postagem"`
	Metrics         Metrics              `json:"metricas" bson:"metricas"`
	Invoice         Invoice              `json:"nf" bson:"nf"`
	Payout          Payout               `json:"repasse" bson:"repasse"`
	Notes           string               `json:"observacoesCampanha" bson:"observacoes_campanha"`
	Financial       Financial            `json:"financial" bson:"financial"`
	Checklist       []ChecklistItem      `json:"checklist" bson:"checklist"`
	Timeline        []TimelineEntry      `json:"timeline" bson:"timeline"`
	CreatedAt       time.Time            `json:"createdAt" bson:"created_at"`
	DeletedAt       *time.Time           `json:"deletedAt,omitempty" bson:"deleted_at,omitempty"`
}

// Default constructors mirror the minimum structures the dashboard's
// automatic routines expect on every campaign record.

func DefaultContract() Contract {
	return Contract{Required: "Sim", Status: ContractStatusPending}
}

func DefaultProduct() Product {
	return Product{Required: "Não", Status: ProductStatusNotSent}
}

func DefaultScript() Script {
	return Script{Required: "Sim", Versions: 1, Status: ScriptStatusNotStarted}
}

func DefaultContent() Content {
	return Content{Quantity: 1, Items: []ContentItem{}}
}

func DefaultPosting() Posting {
	return Posting{Status: PostStatusNotPosted, Network: "Instagram", Type: "Reels"}
}

func DefaultMetrics() Metrics {
	return Metrics{Status: MetricsStatusPending}
}

func DefaultInvoice() Invoice {
	return Invoice{Status: InvoiceStatusPending, Type: "NFSe"}
}

func DefaultPayout() Payout {
	return Payout{Status: PayoutStatusPending}
}

func DefaultFinancial() Financial {
	return Financial{
		WithdrawalStatus: "PENDENTE",
		ClientPayStatus:  "Pendente",
		PayoutStatus:     "Pendente",
		InvoiceStatus:    "Pendente",
	}
}

// ApplyDefaults fills empty enum fields on a decoded campaign so older
// records never surface a blank status to the automatic routines.
func (c *Campaign) ApplyDefaults() {
	if c.Contract.Required == "" {
		c.Contract.Required = "Sim"
	}
	if c.Contract.Status == "" {
		c.Contract.Status = ContractStatusPending
	}
	if c.Product.Required == "" {
		c.Product.Required = "Não"
	}
	if c.Product.Status == "" {
		c.Product.Status = ProductStatusNotSent
	}
	if c.Script.Required == "" {
		c.Script.Required = "Sim"
	}
	if c.Script.Status == "" {
		c.Script.Status = ScriptStatusNotStarted
	}
	if c.Script.Versions == 0 {
		c.Script.Versions = 1
	}
	if c.Content.Quantity == 0 {
		c.Content.Quantity = 1
	}
	if c.Content.Items == nil {
		c.Content.Items = []ContentItem{}
	}
	if c.Posting.Status == "" {
		c.Posting.Status = PostStatusNotPosted
	}
	if c.Posting.Network == "" {
		c.Posting.Network = "Instagram"
	}
	if c.Posting.Type == "" {
		c.Posting.Type = "Reels"
	}
	if c.Metrics.Status == "" {
		c.Metrics.Status = MetricsStatusPending
	}
	if c.Invoice.Status == "" {
		c.Invoice.Status = InvoiceStatusPending
	}
	if c.Invoice.Type == "" {
		c.Invoice.Type = "NFSe"
	}
	if c.Payout.Status == "" {
		c.Payout.Status = PayoutStatusPending
	}
	if c.Financial.WithdrawalStatus == "" {
		c.Financial.WithdrawalStatus = "PENDENTE"
	}
	if c.Financial.ClientPayStatus == "" {
		c.Financial.ClientPayStatus = "Pendente"
	}
	if c.Financial.PayoutStatus == "" {
		c.Financial.PayoutStatus = "Pendente"
	}
	if c.Financial.InvoiceStatus == "" {
		c.Financial.InvoiceStatus = "Pendente"
	}
	if c.Checklist == nil {
		c.Checklist = []ChecklistItem{}
	}
	if c.Timeline == nil {
		c.Timeline = []TimelineEntry{}
	}
}

type CreateCampaignRequest struct {
	Title        string  `json:"title"`
	Brand        string  `json:"brand" validate:"required"`
	InfluencerID string  `json:"influencerId"`
	StartDate    string  `json:"startDate"`
	Briefing     string  `json:"briefing"`
	Value        float64 `json:"value"`
}
