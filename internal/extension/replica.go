package extension

import (
	"time"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// Replica information operation OIDs (Novell eDirectory replication extensions).
const (
	GetReplicaInfoRequestOID  = "2.16.840.1.113719.1.27.100.17"
	GetReplicaInfoResponseOID = "2.16.840.1.113719.1.27.100.18"
)

// ReplicaType identifies the role of a replica in its partition.
type ReplicaType int

// Replica types reported by eDirectory.
const (
	ReplicaMaster ReplicaType = iota
	ReplicaSecondary
	ReplicaReadOnly
	ReplicaSubordinateReference
)

var replicaTypeNames = map[ReplicaType]string{
	ReplicaMaster:               "master",
	ReplicaSecondary:            "secondary",
	ReplicaReadOnly:             "readOnly",
	ReplicaSubordinateReference: "subordinateReference",
}

// String returns the name of the replica type.
func (t ReplicaType) String() string {
	if name, ok := replicaTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GetReplicaInfoRequest asks a server for the state of its replica of a
// partition. Its value is two OCTET STRINGs, the server DN followed by the
// partition DN, with no enclosing SEQUENCE.
type GetReplicaInfoRequest struct {
	*extop.Request
	ServerDN    string
	PartitionDN string
}

// NewGetReplicaInfoRequest builds the request for serverDN and partitionDN.
// The response factory is installed in extop.DefaultRegistry on first use.
// Any string is accepted, including the empty root DN.
func NewGetReplicaInfoRequest(serverDN, partitionDN string) (*GetReplicaInfoRequest, error) {
	if err := extop.DefaultRegistry.Install(ReplicaInfoExtension); err != nil {
		return nil, err
	}

	req, err := extop.NewRequestWithArgs(GetReplicaInfoRequestOID,
		extop.OctetString(serverDN),
		extop.OctetString(partitionDN),
	)
	if err != nil {
		return nil, err
	}

	return &GetReplicaInfoRequest{
		Request:     req,
		ServerDN:    serverDN,
		PartitionDN: partitionDN,
	}, nil
}

// ReplicaInfo holds the decoded fields of a replica information response.
// Times are seconds since the Unix epoch as sent by the server.
type ReplicaInfo struct {
	PartitionID      int    `json:"partitionId" yaml:"partitionId"`
	ReplicaState     int    `json:"replicaState" yaml:"replicaState"`
	ModificationTime int64  `json:"modificationTime" yaml:"modificationTime"`
	PurgeTime        int64  `json:"purgeTime" yaml:"purgeTime"`
	LocalPartitionID int    `json:"localPartitionId" yaml:"localPartitionId"`
	PartitionDN      string `json:"partitionDn" yaml:"partitionDn"`
	ReplicaType      int    `json:"replicaType" yaml:"replicaType"`
	Flags            int    `json:"flags" yaml:"flags"`
}

// Modified returns ModificationTime as a UTC time.
func (i ReplicaInfo) Modified() time.Time {
	return time.Unix(i.ModificationTime, 0).UTC()
}

// Purged returns PurgeTime as a UTC time.
func (i ReplicaInfo) Purged() time.Time {
	return time.Unix(i.PurgeTime, 0).UTC()
}

// Type returns ReplicaType as a ReplicaType.
func (i ReplicaInfo) Type() ReplicaType {
	return ReplicaType(i.ReplicaType)
}

// GetReplicaInfoResponse is the typed response to GetReplicaInfoRequest.
type GetReplicaInfoResponse struct {
	*extop.GenericResponse
	ReplicaInfo
}

// ParseGetReplicaInfoResponse is the extop.Factory for GetReplicaInfoResponseOID.
func ParseGetReplicaInfoResponse(oid string, value []byte) (extop.Response, error) {
	r := extop.NewReader(oid, value)

	var (
		info ReplicaInfo
		err  error
	)
	if info.PartitionID, err = r.ReadInt("partitionID"); err != nil {
		return nil, err
	}
	if info.ReplicaState, err = r.ReadInt("replicaState"); err != nil {
		return nil, err
	}
	// times are seconds since the epoch and may exceed 32 bits
	if info.ModificationTime, err = r.ReadInteger("modificationTime"); err != nil {
		return nil, err
	}
	if info.PurgeTime, err = r.ReadInteger("purgeTime"); err != nil {
		return nil, err
	}
	if info.LocalPartitionID, err = r.ReadInt("localPartitionID"); err != nil {
		return nil, err
	}

	if info.PartitionDN, err = r.ReadString("partitionDN"); err != nil {
		return nil, err
	}

	if info.ReplicaType, err = r.ReadInt("replicaType"); err != nil {
		return nil, err
	}
	if info.Flags, err = r.ReadInt("flags"); err != nil {
		return nil, err
	}
	if err := r.Done(); err != nil {
		return nil, err
	}

	return &GetReplicaInfoResponse{
		GenericResponse: extop.NewGenericResponse(oid, value),
		ReplicaInfo:     info,
	}, nil
}

type replicaInfoExt struct{}

func (replicaInfoExt) Name() string {
	return "replica-info"
}

func (replicaInfoExt) Register(r *extop.Registry) error {
	_, err := r.Ensure(GetReplicaInfoResponseOID, ParseGetReplicaInfoResponse)
	return err
}
